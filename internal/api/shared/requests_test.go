package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title *string `json:"title" validate:"required"`
	Done  *bool   `json:"done"`
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if s.ok {
		return nil
	}
	return errors.New("custom validation failed")
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x","done":true}`))
		var got sampleRequest
		require.NoError(t, DecodeJSON(req, &got))
		assert.Equal(t, "x", *got.Title)
		assert.True(t, *got.Done)
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
		var got sampleRequest
		assert.Error(t, DecodeJSON(req, &got))
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var got sampleRequest
		assert.ErrorIs(t, DecodeJSON(req, &got), ErrMissingBody)
	})

	t.Run("bare null is a missing body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(" null \n"))
		var got sampleRequest
		assert.ErrorIs(t, DecodeJSON(req, &got), ErrMissingBody)
	})

	t.Run("trailing content", func(t *testing.T) {
		for _, body := range []string{`{"title":"b"} trailing`, `{"title":"b"}{}`, `{"title":"b"} 1`} {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			var got sampleRequest
			assert.ErrorIs(t, DecodeJSON(req, &got), ErrTrailingData, body)
		}
	})

	t.Run("trailing whitespace is fine", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"title\":\"b\"}\n\t "))
		var got sampleRequest
		require.NoError(t, DecodeJSON(req, &got))
		assert.Equal(t, "b", *got.Title)
	})

	t.Run("oversized body is cut off", func(t *testing.T) {
		body := `{"title":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var got sampleRequest
		assert.Error(t, DecodeJSON(req, &got))
	})
}

func TestValidateRequest(t *testing.T) {
	title := ""
	assert.NoError(t, ValidateRequest(sampleRequest{Title: &title}), "present but empty satisfies required on a pointer")

	err := ValidateRequest(sampleRequest{})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "title", verrs[0].Field(), "field names should use the JSON tag")
	assert.Equal(t, "required", verrs[0].Tag())

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.EqualError(t, ValidateRequest(selfValidating{}), "custom validation failed")
}

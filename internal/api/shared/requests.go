package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes caps how much of a request body DecodeJSON will read.
const MaxRequestBodyBytes = 1 << 20

// Validate is the shared validator instance. Field names in its errors are
// the JSON names, so they can be echoed to clients.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Body decoding errors reported by DecodeJSON.
var (
	// ErrMissingBody is returned for an empty body or a bare JSON null.
	ErrMissingBody = errors.New("request body is required")

	// ErrTrailingData is returned when anything but whitespace follows the JSON value.
	ErrTrailingData = errors.New("request body contains data after the JSON value")
)

// DecodeJSON decodes a request body holding exactly one JSON value into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBodyBytes))

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrMissingBody
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return ErrMissingBody
	}

	return json.Unmarshal(raw, v)
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return Validate.Struct(v)
}

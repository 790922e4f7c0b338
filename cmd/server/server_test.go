package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/task-manager-api/internal/platform/logger"
)

func TestServe_GracefulShutdown(t *testing.T) {
	app := newTestApplication(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln, app.setupRouter()) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Task Manager API is running"}`, string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	// cleanup closed the pool
	assert.Error(t, app.db.Ping())
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-config", "/tmp/c.yaml", "-migrate", "status"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.yaml", opts.configPath)
	assert.Equal(t, "status", opts.migrateCmd)

	opts, err = parseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, opts.configPath)
	assert.Empty(t, opts.migrateCmd)

	_, err = parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

func TestRun_Migrate(t *testing.T) {
	logger.SetupTestLogger(t)
	dir := t.TempDir()
	t.Setenv("TASKAPI_DATABASE_URL", "file:"+dir+"/tasks.db")
	t.Setenv("TASKAPI_DATABASE_DRIVER", "sqlite")
	t.Setenv("TASKAPI_SERVER_LOG_LEVEL", "error")

	require.NoError(t, run(context.Background(), options{migrateCmd: "up"}))
	require.NoError(t, run(context.Background(), options{migrateCmd: "status"}))
	assert.Error(t, run(context.Background(), options{migrateCmd: "create"}))
}

func TestRun_InvalidConfig(t *testing.T) {
	logger.SetupTestLogger(t)
	t.Setenv("TASKAPI_DATABASE_DRIVER", "oracle")

	err := run(context.Background(), options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

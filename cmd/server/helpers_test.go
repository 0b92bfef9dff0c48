package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfarrell/taskapi/internal/config"
	"github.com/mfarrell/taskapi/internal/platform/memory"
)

// testJWTSecret satisfies the min=32 requirement on the signing secret.
const testJWTSecret = "integration-test-secret-32-chars!!"

// testConfig returns a configuration suitable for in-process testing.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:     8080,
			LogLevel: "error",
		},
		Auth: config.AuthConfig{
			JWTSecret:            testJWTSecret,
			TokenLifetimeMinutes: 60,
		},
	}
}

// newTestApplication assembles an application around a fresh in-memory
// store and returns it together with its router and the concrete store,
// so tests can reset state or inspect it directly.
func newTestApplication(t *testing.T) (*application, http.Handler, *memory.TaskStore) {
	t.Helper()

	quiet := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	app, err := newApplication(testConfig(), quiet)
	require.NoError(t, err, "Failed to assemble test application")

	taskStore, ok := app.taskStore.(*memory.TaskStore)
	require.True(t, ok, "test application must use the in-memory store")

	return app, app.setupRouter(), taskStore
}

// validToken mints a token the test application will accept.
func validToken(t *testing.T, app *application) string {
	t.Helper()

	token, err := app.jwtService.GenerateToken(context.Background(), "integration-test")
	require.NoError(t, err, "Failed to generate test token")
	return token
}

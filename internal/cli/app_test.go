package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"nelo/internal/api"
	"nelo/internal/config"
	"nelo/internal/domain"
	"nelo/internal/repository"
	"nelo/internal/session"
	"nelo/internal/store"
)

// setupTestApp builds an App over an in-memory store with output
// captured in the returned buffer. The session starts signed out.
func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := config.NewConfig()
	backing := store.NewMemory()
	apiInstance := api.New(
		session.NewController(backing, cfg.Storage.SessionKey),
		repository.New(backing, cfg.Storage.TasksKey),
	)

	app := NewApp(apiInstance, cfg)
	var buf bytes.Buffer
	app.SetOutput(&buf)
	return app, &buf
}

// setupSignedInApp builds an App with an authenticated session.
func setupSignedInApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	app, buf := setupTestApp(t)
	_, err := app.api.Login(domain.Credentials{Identifier: "alex", Secret: "pw"})
	require.NoError(t, err)
	buf.Reset()
	return app, buf
}

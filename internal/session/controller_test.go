package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nelo/internal/domain"
	"nelo/internal/errors"
	"nelo/internal/store"
)

const sessionKey = "user"

func TestLogin(t *testing.T) {
	backing := store.NewMemory()
	c := NewController(backing, sessionKey)

	principal, err := c.Login(domain.Credentials{Identifier: "alex@example.com", Secret: "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, "alex@example.com", principal.Identifier)
	assert.True(t, c.Authenticated())

	// Only the identifier is persisted, never the secret.
	data, ok, err := backing.Get(sessionKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"identifier":"alex@example.com"}`, string(data))
}

func TestLoginTrimsIdentifier(t *testing.T) {
	c := NewController(store.NewMemory(), sessionKey)

	principal, err := c.Login(domain.Credentials{Identifier: "  alex  ", Secret: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alex", principal.Identifier)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		creds domain.Credentials
	}{
		{name: "empty identifier", creds: domain.Credentials{Secret: "pw"}},
		{name: "empty secret", creds: domain.Credentials{Identifier: "alex"}},
		{name: "both empty", creds: domain.Credentials{}},
		{name: "whitespace only", creds: domain.Credentials{Identifier: "  ", Secret: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backing := store.NewMemory()
			c := NewController(backing, sessionKey)

			_, err := c.Login(tt.creds)
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			assert.False(t, c.Authenticated())

			_, ok, err := backing.Get(sessionKey)
			require.NoError(t, err)
			assert.False(t, ok, "failed login must not persist a flag")
		})
	}
}

func TestLogoutClearsFlagOnly(t *testing.T) {
	backing := store.NewMemory()
	require.NoError(t, backing.Put("tasks", []byte(`[{"id":"t1"}]`)))

	c := NewController(backing, sessionKey)
	_, err := c.Login(domain.Credentials{Identifier: "alex", Secret: "pw"})
	require.NoError(t, err)

	require.NoError(t, c.Logout())
	assert.False(t, c.Authenticated())

	_, ok, err := backing.Get(sessionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// Task data is left alone.
	tasks, ok, err := backing.Get("tasks")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"t1"}]`, string(tasks))
}

func TestLogoutWhileSignedOut(t *testing.T) {
	c := NewController(store.NewMemory(), sessionKey)
	assert.NoError(t, c.Logout())
}

func TestRestore(t *testing.T) {
	backing := store.NewMemory()

	first := NewController(backing, sessionKey)
	_, err := first.Login(domain.Credentials{Identifier: "alex", Secret: "pw"})
	require.NoError(t, err)

	// A fresh controller over the same store picks up the session.
	second := NewController(backing, sessionKey)
	assert.False(t, second.Authenticated())

	principal, ok := second.Restore()
	require.True(t, ok)
	assert.Equal(t, "alex", principal.Identifier)
	assert.True(t, second.Authenticated())
}

func TestRestoreWithoutFlag(t *testing.T) {
	c := NewController(store.NewMemory(), sessionKey)

	_, ok := c.Restore()
	assert.False(t, ok)
	assert.False(t, c.Authenticated())
}

func TestRestoreClearsCorruptFlag(t *testing.T) {
	backing := store.NewMemory()
	require.NoError(t, backing.Put(sessionKey, []byte("{not json")))

	c := NewController(backing, sessionKey)
	_, ok := c.Restore()
	assert.False(t, ok)
	assert.False(t, c.Authenticated())

	_, present, err := backing.Get(sessionKey)
	require.NoError(t, err)
	assert.False(t, present, "corrupt flag should be cleared")
}

func TestOnChangeCallback(t *testing.T) {
	c := NewController(store.NewMemory(), sessionKey)

	var transitions []bool
	c.OnChange(func(authenticated bool) {
		transitions = append(transitions, authenticated)
	})

	_, err := c.Login(domain.Credentials{Identifier: "alex", Secret: "pw"})
	require.NoError(t, err)
	require.NoError(t, c.Logout())

	assert.Equal(t, []bool{true, false}, transitions)
}

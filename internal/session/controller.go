// Package session tracks the mock login gate: who is signed in, and the
// persisted flag that lets a session outlive the process.
package session

import (
	"encoding/json"
	"strings"
	"sync"

	"nelo/internal/domain"
	"nelo/internal/errors"
	"nelo/internal/logging"
	"nelo/internal/store"
	"nelo/internal/validation"
)

// Controller owns the authenticated principal and mirrors it to the
// store under the session key, so a later process can restore it. All
// methods are safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	store     store.Store
	key       string
	principal *domain.Principal
	validator *validation.CredentialsValidator
	onChange  func(authenticated bool)
}

// NewController creates a session controller over the given store and
// key. The session starts signed out; call Restore to pick up a
// persisted flag.
func NewController(s store.Store, key string) *Controller {
	return &Controller{
		store:     s,
		key:       key,
		validator: validation.NewCredentialsValidator(),
	}
}

// OnChange registers a callback invoked after every authentication
// state transition. The callback runs with the controller unlocked.
func (c *Controller) OnChange(fn func(authenticated bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Login validates the credentials and, on success, records the
// principal and persists the session flag. The secret is checked for
// presence only and never stored.
func (c *Controller) Login(creds domain.Credentials) (domain.Principal, error) {
	if err := c.validator.ValidateCredentials(creds); err != nil {
		return domain.Principal{}, errors.NewValidationError("invalid credentials", err)
	}

	principal := domain.Principal{Identifier: strings.TrimSpace(creds.Identifier)}

	c.mu.Lock()
	data, err := json.Marshal(principal)
	if err != nil {
		c.mu.Unlock()
		return domain.Principal{}, errors.NewStorageError("encode session", err)
	}
	if err := c.store.Put(c.key, data); err != nil {
		c.mu.Unlock()
		return domain.Principal{}, errors.NewStorageError("write session", err)
	}
	c.principal = &principal
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(true)
	}
	return principal, nil
}

// Logout clears the in-memory principal and removes the persisted
// flag. Logging out while signed out is a no-op. Task data is left
// untouched.
func (c *Controller) Logout() error {
	c.mu.Lock()
	if c.principal == nil {
		c.mu.Unlock()
		return nil
	}
	if err := c.store.Delete(c.key); err != nil {
		c.mu.Unlock()
		return errors.NewStorageError("clear session", err)
	}
	c.principal = nil
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(false)
	}
	return nil
}

// Restore loads the persisted session flag, if any. A missing flag
// leaves the session signed out; a corrupt flag is cleared and treated
// as signed out. Restore never fails the caller for a bad flag.
func (c *Controller) Restore() (domain.Principal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok, err := c.store.Get(c.key)
	if err != nil {
		logging.Debugf("session flag read failed: %v\n", err)
		return domain.Principal{}, false
	}
	if !ok {
		return domain.Principal{}, false
	}

	var principal domain.Principal
	if err := json.Unmarshal(data, &principal); err != nil || !principal.IsValid() {
		logging.Debugf("session flag unparsable, clearing: %v\n", err)
		if err := c.store.Delete(c.key); err != nil {
			logging.Debugf("session flag clear failed: %v\n", err)
		}
		return domain.Principal{}, false
	}

	c.principal = &principal
	return principal, true
}

// Authenticated reports whether a principal is signed in.
func (c *Controller) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.principal != nil
}

// Principal returns the signed-in principal, if any.
func (c *Controller) Principal() (domain.Principal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.principal == nil {
		return domain.Principal{}, false
	}
	return *c.principal, true
}

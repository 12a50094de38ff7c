package domain

import "strings"

// Credentials carries the fields a login attempt supplies. The secret is
// never stored; authentication is a presence check, not a security
// boundary.
type Credentials struct {
	Identifier string
	Secret     string
}

// IsValid checks that both required fields are present after trimming.
func (c Credentials) IsValid() bool {
	return strings.TrimSpace(c.Identifier) != "" && strings.TrimSpace(c.Secret) != ""
}

// Principal identifies the authenticated user for the current session.
// This is the only thing the session flag persists.
type Principal struct {
	Identifier string `json:"identifier"`
}

// IsValid checks that the principal carries an identifier.
func (p Principal) IsValid() bool {
	return strings.TrimSpace(p.Identifier) != ""
}

package models

import "time"

// CredentialTTL is how long a captured bearer token is trusted.
const CredentialTTL = time.Hour

// Credential is a bearer token captured from the portal.
type Credential struct {
	Token    string
	IssuedAt time.Time
}

// NewCredential stamps token with the given issuance time.
func NewCredential(token string, issuedAt time.Time) Credential {
	return Credential{Token: token, IssuedAt: issuedAt}
}

// ExpiresAt returns the end of the validity window.
func (c Credential) ExpiresAt() time.Time {
	return c.IssuedAt.Add(CredentialTTL)
}

// ValidAt reports whether the token is non-empty and younger than CredentialTTL at t.
func (c Credential) ValidAt(t time.Time) bool {
	return c.Token != "" && t.Sub(c.IssuedAt) < CredentialTTL
}

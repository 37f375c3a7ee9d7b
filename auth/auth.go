package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// APIKey is the shared secret that authorizes destructive operations.
// When Hash holds a bcrypt hash it takes precedence over Plain.
type APIKey struct {
	Plain string
	Hash  string
}

func (k APIKey) Verify(candidate string) bool {
	if k.Hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(k.Hash), []byte(candidate)) == nil
	}
	if k.Plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(k.Plain), []byte(candidate)) == 1
}

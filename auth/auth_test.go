package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPlain(t *testing.T) {
	key := APIKey{Plain: "TopSecretAPIKey"}

	if !key.Verify("TopSecretAPIKey") {
		t.Errorf("expected matching key to verify")
	}
	for _, candidate := range []string{"", "wrong", "topsecretapikey", "TopSecretAPIKey "} {
		if key.Verify(candidate) {
			t.Errorf("expected %q to be rejected", candidate)
		}
	}
}

func TestVerifyEmptySecretRejectsEverything(t *testing.T) {
	if (APIKey{}).Verify("") {
		t.Errorf("an unset secret must not authorize an empty key")
	}
}

func TestVerifyHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	key := APIKey{Plain: "TopSecretAPIKey", Hash: string(hash)}

	if !key.Verify("hashed-secret") {
		t.Errorf("expected hashed secret to verify")
	}
	if key.Verify("TopSecretAPIKey") {
		t.Errorf("plain secret must be ignored when a hash is configured")
	}
}

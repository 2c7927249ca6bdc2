package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "pw"},
		{"long password", strings.Repeat("a", 72)},
		{"utf8 password", "contraseña-segura-ñ€字"},
		{"empty password", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash failed: %v", err)
			}
			if hash == tt.password {
				t.Error("hash must not equal the plaintext password")
			}
			if !Verify(tt.password, hash) {
				t.Error("expected Verify to succeed for matching password")
			}
			if Verify(tt.password+"x", hash) {
				t.Error("expected Verify to fail for non-matching password")
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	h2, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ")
	}
	if !Verify("same-password", h1) || !Verify("same-password", h2) {
		t.Error("both salted hashes must verify")
	}
}

func TestVerifyRejectsOverlongCandidate(t *testing.T) {
	stored := strings.Repeat("a", 72)
	hash, err := Hash(stored)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	// A longer candidate sharing the stored password's first 72 bytes
	// must not authenticate
	if Verify(stored+"x", hash) {
		t.Error("candidate over the bcrypt limit must never verify")
	}
	if Verify(stored+strings.Repeat("b", 50), hash) {
		t.Error("candidate over the bcrypt limit must never verify")
	}
	if !Verify(stored, hash) {
		t.Error("the exact stored password must still verify")
	}
}

func TestHashTooLong(t *testing.T) {
	_, err := Hash(strings.Repeat("a", 100))
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"garbage hash", "not-a-bcrypt-hash"},
		{"truncated hash", "$2a$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Verify("anything", tt.hash) {
				t.Error("malformed hash must never verify")
			}
		})
	}
}

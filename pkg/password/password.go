package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned when the password exceeds bcrypt's 72-byte limit
var ErrPasswordTooLong = errors.New("password exceeds maximum length")

// maxPasswordBytes is bcrypt's input limit. GenerateFromPassword rejects
// longer inputs, but CompareHashAndPassword silently truncates them, so
// Verify has to enforce the limit itself.
const maxPasswordBytes = 72

// Hash returns a salted bcrypt hash of the given password, safe to persist.
// Each call produces a different hash for the same input.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash.
// A malformed stored hash is treated as a non-match, never an error.
// Candidates over the bcrypt limit never match: no stored hash can have
// been created from one, and comparing the truncated prefix would let a
// wrong password with a matching prefix authenticate.
func Verify(password, hash string) bool {
	if len(password) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

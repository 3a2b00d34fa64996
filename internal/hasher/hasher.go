// Package hasher wraps bcrypt so the work factor lives in one place.
package hasher

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost matches the 10 rounds the frontend's previous backend used;
// bumping it only affects newly created digests.
const Cost = 10

func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A non-nil error means
// the comparison itself failed (malformed digest), not a mismatch.
func Verify(plaintext string, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

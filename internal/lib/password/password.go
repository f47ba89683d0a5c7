// Package password hashes and checks account credentials with bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for new hashes. Tests lower it to
// bcrypt.MinCost.
var Cost = 12

// Hash returns the bcrypt hash of plain.
func Hash(plain string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Compare returns nil when plain matches hash.
func Compare(hash, plain string) error {
	const op = "password.Compare"
	if hash == "" {
		return fmt.Errorf("%s: %w", op, bcrypt.ErrMismatchedHashAndPassword)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// IsStrong reports whether a new password is acceptable: at least 6
// characters with no surrounding whitespace.
func IsStrong(plain string) bool {
	if len(plain) < 6 {
		return false
	}
	return plain[0] != ' ' && plain[len(plain)-1] != ' '
}

// utils/password.go - Password hashing helpers
package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt only reads the first 72 bytes of input. Longer passwords are
// truncated the same way on both hash and verify, otherwise logins with
// long passwords would fail.
const maxPasswordBytes = 72

// HashPassword returns the bcrypt hash of the given password.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(truncate(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a bcrypt hash against a plain password.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain)) == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

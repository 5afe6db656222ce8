package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the user table was populated with.
const bcryptCost = 10

// HashPassword produces a salted digest safe to persist.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
// A mismatch is not an error condition.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

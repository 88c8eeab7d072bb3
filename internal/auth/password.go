package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword creates a bcrypt hash of the password. The output embeds
// the algorithm tag, salt and cost, so it is self-describing for later
// verification.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against a stored hash. Malformed
// or legacy stored values fail verification; they never error or panic.
// There is deliberately no plaintext-equality fallback here: legacy
// credentials are migrated by rehashing on the next successful login
// instead (see NeedsRehash).
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// NeedsRehash reports whether a stored hash should be regenerated: either
// it is not a parseable bcrypt hash, or it was produced at a lower cost
// than the current default.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}
	return cost < bcrypt.DefaultCost
}

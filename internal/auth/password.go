package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of password with a fresh random
// salt. The digest is self-describing (algorithm, cost, and salt are
// embedded), so old hashes stay verifiable after a cost change.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword reports whether password matches the bcrypt digest.
// Any mismatch or malformed digest yields false, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

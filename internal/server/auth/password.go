package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/miniter/internal/common"
)

// HashPassword derives a salted bcrypt digest from a plaintext password.
// The salt is embedded in the returned string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a candidate password against a stored bcrypt hash.
// The comparison cost does not depend on where a mismatch occurs.
//
// A mismatch returns (false, nil). A non-nil error means the stored hash
// itself could not be parsed (common.ErrCorruptPasswordHash), which is a
// data-corruption condition distinct from a wrong password.
func VerifyPassword(storedHash, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, common.ErrCorruptPasswordHash
}

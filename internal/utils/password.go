package utils

import "golang.org/x/crypto/bcrypt"

// NewDummyHash returns a throwaway bcrypt hash at the given cost, compared
// against when a login names an unknown account so the request costs one
// bcrypt verification at the same cost whether or not the username exists.
func NewDummyHash(cost int) string {
	b, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return string(b)
}

// HashPassword returns a bcrypt hash of plain using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a bcrypt hash and a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

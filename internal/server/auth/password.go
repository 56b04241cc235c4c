package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes plaintext credentials and verifies candidates
// against stored hashes.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt. Each call to Hash
// generates a fresh salt, embedded in the returned string; comparison is
// constant-time inside bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

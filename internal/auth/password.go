package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher computes salted bcrypt digests. The cost factor is a tunable so it
// can be raised as hardware gets faster.
type Hasher struct {
	cost int
}

// NewHasher builds a Hasher with the given bcrypt cost. A cost outside the
// valid bcrypt range falls back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash embeds a random salt, so hashing the same password twice yields
// different digests. Equality must go through Verify.
func (h *Hasher) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

func (h *Hasher) Verify(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

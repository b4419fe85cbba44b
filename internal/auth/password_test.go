package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)
	password := "securePassword123"

	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "" {
		t.Error("expected non-empty hash")
	}

	if hash == password {
		t.Error("hash should not equal plaintext password")
	}
}

func TestHash_DifferentHashes(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)
	password := "securePassword123"

	hash1, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hash2, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("same password should produce different hashes due to salt")
	}
}

func TestVerify_Correct(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)
	password := "securePassword123"

	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if err := hasher.Verify(hash, password); err != nil {
		t.Errorf("expected correct password to match, got error: %v", err)
	}
}

func TestVerify_Incorrect(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("securePassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if err := hasher.Verify(hash, "wrongPassword456"); err == nil {
		t.Error("expected error for incorrect password")
	}
}

func TestVerify_EmptyPassword(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("securePassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if err := hasher.Verify(hash, ""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	hasher := NewHasher(bcrypt.MinCost)

	if err := hasher.Verify("not-a-valid-bcrypt-hash", "password"); err == nil {
		t.Error("expected error for invalid hash format")
	}
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	hasher := NewHasher(bcrypt.MaxCost + 1)

	if hasher.cost != bcrypt.DefaultCost {
		t.Errorf("expected fallback to default cost, got %d", hasher.cost)
	}

	hasher = NewHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Errorf("expected fallback to default cost, got %d", hasher.cost)
	}
}

package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	h := NewHasherWithCost(bcrypt.MinCost)

	hashed, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "secret1" {
		t.Fatal("hash returned the plaintext")
	}

	ok, err := h.Verify("secret1", hashed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to verify")
	}

	ok, err = h.Verify("wrong", hashed)
	if err != nil {
		t.Fatalf("verify mismatch: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch to fail verification")
	}
}

func TestHashSaltsEachCall(t *testing.T) {
	h := NewHasherWithCost(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if first == second {
		t.Fatal("identical plaintexts produced identical hashes; salt is not fresh")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher()

	ok, err := h.Verify("anything", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatal("expected an evaluation error for a malformed hash")
	}
	if ok {
		t.Fatal("malformed hash must not verify")
	}
}

func TestCostFallback(t *testing.T) {
	h := NewHasherWithCost(99)
	if h.cost != DefaultCost {
		t.Fatalf("expected fallback to DefaultCost, got %d", h.cost)
	}
}

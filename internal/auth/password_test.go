package auth

import (
	"strings"
	"testing"
)

func TestHasherHashAndVerify(t *testing.T) {
	// Low cost keeps the test fast; production uses DefaultBcryptCost.
	h := NewHasher(4)

	digest, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "secret1" || digest == "" {
		t.Fatalf("digest must not equal or contain the plaintext, got %q", digest)
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("expected bcrypt digest, got %q", digest)
	}

	if !h.Verify("secret1", digest) {
		t.Error("Verify rejected the correct password")
	}
	if h.Verify("wrong-password", digest) {
		t.Error("Verify accepted a wrong password")
	}
}

func TestHasherDistinctSalts(t *testing.T) {
	h := NewHasher(4)

	first, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ (salted)")
	}
}

func TestNewHasherClampsCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{name: "too low", cost: 0},
		{name: "too high", cost: 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHasher(tt.cost)
			if h.cost != DefaultBcryptCost {
				t.Errorf("expected cost %d, got %d", DefaultBcryptCost, h.cost)
			}
		})
	}
}

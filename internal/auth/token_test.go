package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/skillshare-lk/user-service/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    "7f3c2a10-9f3e-4a93-8f1a-0f4f4a6b2c11",
		Email: "a@b.com",
		Role:  models.RoleLearner,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", 24*time.Hour)

	token, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "7f3c2a10-9f3e-4a93-8f1a-0f4f4a6b2c11" {
		t.Errorf("unexpected user id %q", claims.UserID)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.Role != models.RoleLearner {
		t.Errorf("token role = %q, want learner", claims.Role)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatal("expected iat and exp claims")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 24*time.Hour {
		t.Errorf("expiry window = %v, want 24h", got)
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = m.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	goodToken, err := other.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: goodToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			if !errors.Is(err, ErrTokenMalformed) {
				t.Errorf("expected ErrTokenMalformed, got %v", err)
			}
		})
	}
}

package utils

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("0123456789abcdef0123456789abcdef", "user-1", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken("0123456789abcdef0123456789abcdef", token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("user id = %q, want user-1", claims.UserID)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	good, err := GenerateToken("secret-a", "user-1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := GenerateToken("secret-a", "user-1", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "secret-b", good},
		{"expired", "secret-a", expired},
		{"garbage", "secret-a", "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.secret, tt.token); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGeneratePortalToken(t *testing.T) {
	a, err := GeneratePortalToken()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := GeneratePortalToken()
	if len(a) != 32 || a == b {
		t.Fatalf("unexpected tokens %q %q", a, b)
	}
	if strings.ContainsAny(a, "-_") {
		t.Fatalf("token %q contains separator characters", a)
	}
}

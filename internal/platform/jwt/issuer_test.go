package jwtmw

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssuer_SignAndVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
	}{
		{"small id", 1},
		{"large id", 4294967295},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issuer := NewIssuer("test-secret")

			token, err := issuer.Sign(tt.userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token == "" {
				t.Fatal("token is empty")
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.User.ID != tt.userID {
				t.Errorf("expected user id %d, got %d", tt.userID, claims.User.ID)
			}
		})
	}
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewIssuer("secret-a").Sign(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewIssuer("secret-b").Verify(token)
	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}

func TestIssuer_Verify_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("test-secret")

	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Verify(tokenStr); err != ErrInvalidToken {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got: %v", tokenStr, err)
		}
	}
}

func TestIssuer_Verify_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	// Unsigned tokens must never verify, whatever their claims say.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{User: UserClaim{ID: 7}})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewIssuer("test-secret").Verify(tokenStr); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}

package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %s", err.Error())
	}

	userID, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %s", err.Error())
	}
	if userID != "user-1" {
		t.Fatalf("unexpected user id returned: %s", userID)
	}
}

func TestTokenExpiry(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	issued := time.Now()
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %s", err.Error())
	}

	// Still valid just before the expiry horizon.
	issuer.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, err := issuer.Verify(token); err != nil {
		t.Fatalf("token rejected before expiry: %s", err.Error())
	}

	// Rejected once the horizon has passed.
	issuer.now = func() time.Time { return issued.Add(61 * time.Minute) }
	if _, err := issuer.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokenBadSignature(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	otherIssuer := NewTokenIssuer([]byte("other-secret"), time.Hour)

	token, err := otherIssuer.Issue("user-1")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %s", err.Error())
	}

	if _, err := issuer.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := issuer.Verify(raw); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestDefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), 0)
	if issuer.ttl != DefaultTokenTTL {
		t.Fatalf("expected default ttl, got %s", issuer.ttl)
	}
}

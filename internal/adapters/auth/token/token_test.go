package token

import (
	"context"
	"testing"
	"time"

	"petmate/internal/ports/auth"
)

func TestManager_IssueAndVerify_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Issue(context.Background(), auth.Claims{UserID: "user-1", Username: "mina"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := m.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "mina" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestManager_Issue_RequiresUserID(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	if _, err := m.Issue(context.Background(), auth.Claims{Username: "mina"}); err == nil {
		t.Fatalf("expected error without user id")
	}
}

func TestManager_Verify_RejectsEmptyAndGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	if _, err := m.Verify(context.Background(), "  "); err != ErrTokenEmpty {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
	if _, err := m.Verify(context.Background(), "not-a-jwt"); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestManager_Verify_RejectsForeignSecret(t *testing.T) {
	a := NewManager("secret-a", time.Hour)
	b := NewManager("secret-b", time.Hour)

	tok, err := a.Issue(context.Background(), auth.Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := b.Verify(context.Background(), tok); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid across secrets, got %v", err)
	}
}

func TestManager_Verify_RejectsExpired(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	issuedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	tok, err := m.Issue(context.Background(), auth.Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// sigue válido justo antes de expirar
	m.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	if _, err := m.Verify(context.Background(), tok); err != nil {
		t.Fatalf("expected valid before ttl, got %v", err)
	}

	m.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := m.Verify(context.Background(), tok); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid after ttl, got %v", err)
	}
}

func TestManager_EmptySecretGetsEphemeralKey(t *testing.T) {
	a := NewManager("", time.Hour)
	b := NewManager("", time.Hour)

	tok, err := a.Issue(context.Background(), auth.Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := a.Verify(context.Background(), tok); err != nil {
		t.Fatalf("own token must verify: %v", err)
	}
	// otro proceso (otro secreto efímero) no puede verificarlo
	if _, err := b.Verify(context.Background(), tok); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for foreign ephemeral secret, got %v", err)
	}
}

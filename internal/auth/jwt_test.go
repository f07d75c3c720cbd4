package auth

import (
	"testing"
	"time"

	"capstack-api/internal/config"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(config.AuthConfig{JWTSecret: "secret", SessionTTL: 7 * 24 * time.Hour})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	return m
}

func TestNewManager_RequiresSecret(t *testing.T) {
	if _, err := NewManager(config.AuthConfig{}); err == nil {
		t.Fatalf("expected error for missing secret")
	}
}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	m := testManager(t)

	now := time.Unix(1700000000, 0).UTC()
	tok, err := m.Issue(now, "user-1", "a@b.com", "Alice", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Verify(tok, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.com" || claims.Name != "Alice" || claims.IsGuest {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestIssueAndVerify_GuestFlagSurvives(t *testing.T) {
	m := testManager(t)

	now := time.Unix(1700000000, 0).UTC()
	tok, err := m.Issue(now, "guest_1700000000000_abc", "", "Guest User", true)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Verify(tok, now)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !claims.IsGuest {
		t.Fatalf("expected isGuest=true, got %+v", claims)
	}
	if claims.Email != "" {
		t.Fatalf("guest token should carry no email, got %q", claims.Email)
	}
}

func TestVerify_RejectsExpired(t *testing.T) {
	m := testManager(t)

	now := time.Unix(1700000000, 0).UTC()
	tok, err := m.Issue(now, "u", "", "n", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Past the 7-day expiry plus leeway.
	if _, err := m.Verify(tok, now.Add(8*24*time.Hour)); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestVerify_RejectsForeignSignature(t *testing.T) {
	m := testManager(t)
	other, err := NewManager(config.AuthConfig{JWTSecret: "other-secret"})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}

	now := time.Now()
	tok, err := other.Issue(now, "u", "", "n", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify(tok, now); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestClassify_DowngradesAllFailures(t *testing.T) {
	m := testManager(t)
	now := time.Now()

	expired, err := m.Issue(now.Add(-30*24*time.Hour), "u", "", "n", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"no bearer prefix", "Token abc"},
		{"empty token segment", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
	}
	for _, tc := range cases {
		if id := m.Classify(tc.header, now); id.Kind != KindAnonymous {
			t.Fatalf("%s: expected anonymous, got %v", tc.name, id.Kind)
		}
	}
}

func TestClassify_GuestAndAuthenticated(t *testing.T) {
	m := testManager(t)
	now := time.Now()

	guestTok, _ := m.Issue(now, "guest_1", "", "Guest User", true)
	userTok, _ := m.Issue(now, "user-1", "a@b.com", "Alice", false)

	if id := m.Classify("Bearer "+guestTok, now); id.Kind != KindGuest || id.UserID != "guest_1" {
		t.Fatalf("expected guest classification, got %+v", id)
	}
	id := m.Classify("Bearer "+userTok, now)
	if id.Kind != KindAuthenticated || id.UserID != "user-1" || id.Email != "a@b.com" {
		t.Fatalf("expected authenticated classification, got %+v", id)
	}
}

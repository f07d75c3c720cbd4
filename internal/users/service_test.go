package users

import (
	"strings"
	"testing"
	"time"
)

func TestValidatePIN(t *testing.T) {
	cases := []struct {
		pin string
		ok  bool
	}{
		{"1234", true},
		{"0000", true},
		{"12", false},
		{"12345", false},
		{"", false},
		{"12a4", false},
		{"12 4", false},
		{"١٢٣٤", false}, // non-ASCII digits
	}
	for _, tc := range cases {
		err := ValidatePIN(tc.pin)
		if tc.ok && err != nil {
			t.Fatalf("pin %q: expected valid, got %v", tc.pin, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("pin %q: expected error", tc.pin)
		}
	}
}

func TestHashAndCheckPIN(t *testing.T) {
	h, err := hashPIN("1234")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "1234" {
		t.Fatalf("hash must not be the plain PIN")
	}
	if !checkPIN(h, "1234") {
		t.Fatalf("expected match")
	}
	if checkPIN(h, "4321") {
		t.Fatalf("expected mismatch")
	}
}

func TestNewGuestID_Format(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := newGuestID(now)
	if !strings.HasPrefix(id, "guest_1700000000000_") {
		t.Fatalf("unexpected guest id %q", id)
	}
	if len(id) <= len("guest_1700000000000_") {
		t.Fatalf("guest id missing random suffix: %q", id)
	}
	if other := newGuestID(now); other == id {
		t.Fatalf("two guest ids at the same instant collided: %q", id)
	}
}

package jwt

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	m, err := NewManager(Config{
		GrantTTL:      time.Minute,
		SigningMethod: MethodEd25519,
		PrivateKey:    priv,
		PublicKey:     pub,
		Issuer:        "goperm-test",
	})
	if err != nil {
		t.Fatalf("manager init failed: %v", err)
	}
	return m
}

func TestGrantRoundTrip(t *testing.T) {
	m := newTestManager(t)

	state := []byte{0, 0, 0, 0, 0, 0, 0, 10, 0, 0, 0, 0, 0, 0, 0, 0b10000110}
	token, err := m.CreateGrant("user-42", state)
	if err != nil {
		t.Fatalf("create grant: %v", err)
	}

	claims, err := m.ParseGrant(token)
	if err != nil {
		t.Fatalf("parse grant: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Fatalf("subject %q, want %q", claims.Subject, "user-42")
	}
	if len(claims.State) != len(state) {
		t.Fatalf("state length %d, want %d", len(claims.State), len(state))
	}
	for i := range state {
		if claims.State[i] != state[i] {
			t.Fatalf("state byte %d = %#x, want %#x", i, claims.State[i], state[i])
		}
	}
}

func TestParseGrantRejectsTamperedToken(t *testing.T) {
	m := newTestManager(t)

	token, err := m.CreateGrant("user-42", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("create grant: %v", err)
	}

	// Flip a byte in the signature segment.
	corrupted := []byte(token)
	corrupted[len(corrupted)-2] ^= 0x01

	if _, err := m.ParseGrant(string(corrupted)); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestParseGrantRejectsForeignKey(t *testing.T) {
	m := newTestManager(t)
	other := newTestManager(t)

	token, err := other.CreateGrant("user-42", nil)
	if err != nil {
		t.Fatalf("create grant: %v", err)
	}

	if _, err := m.ParseGrant(token); err == nil {
		t.Fatal("expected token signed with a foreign key to be rejected")
	}
}

func TestHS256RoundTrip(t *testing.T) {
	m, err := NewManager(Config{
		GrantTTL:      time.Minute,
		SigningMethod: MethodHS256,
		PrivateKey:    []byte("0123456789abcdef0123456789abcdef"),
	})
	if err != nil {
		t.Fatalf("manager init failed: %v", err)
	}

	token, err := m.CreateGrant("user-7", []byte{0xff})
	if err != nil {
		t.Fatalf("create grant: %v", err)
	}
	claims, err := m.ParseGrant(token)
	if err != nil {
		t.Fatalf("parse grant: %v", err)
	}
	if claims.Subject != "user-7" {
		t.Fatalf("subject %q, want %q", claims.Subject, "user-7")
	}
}

func TestNewManagerValidation(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero ttl", Config{SigningMethod: MethodEd25519, PrivateKey: priv, PublicKey: pub}},
		{"missing public key", Config{GrantTTL: time.Minute, SigningMethod: MethodEd25519, PrivateKey: priv}},
		{"hs256 missing key", Config{GrantTTL: time.Minute, SigningMethod: MethodHS256}},
		{"unknown method", Config{GrantTTL: time.Minute, SigningMethod: "rs1024"}},
		{"oversized leeway", Config{GrantTTL: time.Minute, SigningMethod: MethodEd25519, PrivateKey: priv, PublicKey: pub, Leeway: time.Hour}},
	}
	for _, tc := range cases {
		if _, err := NewManager(tc.cfg); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

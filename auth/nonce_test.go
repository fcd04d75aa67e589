package auth

import (
	"testing"
	"time"
)

func TestNonce_RoundTrip(t *testing.T) {
	n := NewNonceService("test-secret", 12*time.Hour)

	nonce := n.Create("save-general", "sess-1")
	if len(nonce) != NonceLength {
		t.Fatalf("expected %d-char nonce, got %q", NonceLength, nonce)
	}
	if !n.Verify(nonce, "save-general", "sess-1") {
		t.Fatalf("expected nonce to verify")
	}
}

func TestNonce_WrongActionOrSession(t *testing.T) {
	n := NewNonceService("test-secret", 12*time.Hour)
	nonce := n.Create("save-general", "sess-1")

	if n.Verify(nonce, "save-defaults", "sess-1") {
		t.Fatalf("nonce must be bound to its action")
	}
	if n.Verify(nonce, "save-general", "sess-2") {
		t.Fatalf("nonce must be bound to its session")
	}
}

func TestNonce_Tampered(t *testing.T) {
	n := NewNonceService("test-secret", 12*time.Hour)
	nonce := n.Create("save-general", "sess-1")

	tampered := "0000000000"
	if tampered == nonce {
		tampered = "1111111111"
	}
	if n.Verify(tampered, "save-general", "sess-1") {
		t.Fatalf("tampered nonce must fail")
	}
	if n.Verify("", "save-general", "sess-1") {
		t.Fatalf("empty nonce must fail")
	}
	if n.Verify(nonce+"x", "save-general", "sess-1") {
		t.Fatalf("wrong-length nonce must fail")
	}
}

func TestNonce_PreviousTickAccepted(t *testing.T) {
	n := NewNonceService("test-secret", time.Hour)

	base := time.Now()
	n.now = func() time.Time { return base }
	nonce := n.Create("save-general", "sess-1")

	// One tick later the nonce still verifies via the previous-tick check.
	n.now = func() time.Time { return base.Add(time.Hour) }
	if !n.Verify(nonce, "save-general", "sess-1") {
		t.Fatalf("expected previous-tick nonce to verify")
	}

	// Two ticks later it is dead.
	n.now = func() time.Time { return base.Add(2 * time.Hour) }
	if n.Verify(nonce, "save-general", "sess-1") {
		t.Fatalf("expected nonce to expire after two ticks")
	}
}

func TestNonce_RandomSecretPerService(t *testing.T) {
	a := NewNonceService("", time.Hour)
	b := NewNonceService("", time.Hour)

	nonce := a.Create("save-general", "sess-1")
	if b.Verify(nonce, "save-general", "sess-1") {
		t.Fatalf("nonces must not verify across services with random secrets")
	}
}

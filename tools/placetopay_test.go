package tools

import (
	"testing"
	"time"
)

func TestBuildPlaceToPayAuthKnownVector(t *testing.T) {
	nonce := make([]byte, 16)
	for i := range nonce {
		nonce[i] = byte(i)
	}
	at := time.Date(2024, 6, 10, 15, 4, 5, 123456789, time.UTC)

	auth := buildPlaceToPayAuth("test-login", "024h1IlD", nonce, at)

	if auth.Login != "test-login" {
		t.Fatalf("unexpected login: %s", auth.Login)
	}
	// seed estrito ISO-8601: sem milissegundos (erro 102 do gateway)
	if auth.Seed != "2024-06-10T15:04:05Z" {
		t.Fatalf("unexpected seed: %s", auth.Seed)
	}
	if auth.Nonce != "AAECAwQFBgcICQoLDA0ODw==" {
		t.Fatalf("unexpected nonce: %s", auth.Nonce)
	}
	if auth.TranKey != "8RB3hQd2ei5bVFuGUdAuJ4PXAJtGo8a3L2nU44tL3wM=" {
		t.Fatalf("unexpected tranKey: %s", auth.TranKey)
	}
}

func TestNewPlaceToPayAuthIsFresh(t *testing.T) {
	a, err := NewPlaceToPayAuth("login", "secret")
	if err != nil {
		t.Fatalf("new auth: %v", err)
	}
	b, err := NewPlaceToPayAuth("login", "secret")
	if err != nil {
		t.Fatalf("new auth: %v", err)
	}
	if a.Nonce == b.Nonce {
		t.Fatal("expected distinct nonces")
	}
	if a.TranKey == "" || a.Seed == "" {
		t.Fatalf("incomplete auth block: %+v", a)
	}
}

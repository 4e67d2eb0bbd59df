package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPassword(hash, "secret123") {
		t.Error("correct password was rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password was accepted")
	}
}

func TestCheckPasswordAgainstGarbageHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "secret123") {
		t.Error("garbage hash was accepted")
	}
}

package utils

import "testing"

func TestPasswordHashing(t *testing.T) {
	password := "demo-password"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "" || hash == password {
		t.Fatal("expected a non-empty hash distinct from the password")
	}
	if !CheckPasswordHash(password, hash) {
		t.Fatal("CheckPasswordHash should succeed for the right password")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Fatal("CheckPasswordHash should fail for the wrong password")
	}
}

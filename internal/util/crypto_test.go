package util

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	str, err := RandomString(32)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(str) != 32 {
		t.Errorf("length: want 32, got %d", len(str))
	}

	str2, _ := RandomString(32)
	if str == str2 {
		t.Error("two calls should not collide")
	}

	if _, err = RandomString(0); err == nil {
		t.Error("length 0 should error")
	}
	if _, err = RandomString(-5); err == nil {
		t.Error("negative length should error")
	}
}

func TestEncryptDecryptAES(t *testing.T) {
	key := "test-encryption-key"

	testCases := []string{
		"Hello World",
		"",
		"Special!@#$%^&*()",
		`{"access_token":"1000.abc","refresh_token":"1000.def"}`,
		strings.Repeat("A", 1000),
	}

	for _, plaintext := range testCases {
		encrypted, err := EncryptAES(key, []byte(plaintext))
		if err != nil {
			t.Fatalf("encrypt %q: %v", plaintext, err)
		}

		decrypted, err := DecryptAES(key, encrypted)
		if err != nil {
			t.Fatalf("decrypt %q: %v", plaintext, err)
		}

		if string(decrypted) != plaintext {
			t.Errorf("round trip mismatch\nwant: %s\ngot:  %s", plaintext, string(decrypted))
		}
	}
}

func TestEncryptAES_DifferentKeys(t *testing.T) {
	plaintext := []byte("Secret Data")

	encrypted1, _ := EncryptAES("key1", plaintext)
	encrypted2, _ := EncryptAES("key2", plaintext)

	if string(encrypted1) == string(encrypted2) {
		t.Error("different keys should produce different ciphertext")
	}
}

func TestDecryptAES_WrongKey(t *testing.T) {
	encrypted, _ := EncryptAES("correct-key", []byte("Data"))

	if _, err := DecryptAES("wrong-key", encrypted); err == nil {
		t.Error("wrong key should fail")
	}
}

func TestDecryptAES_InvalidData(t *testing.T) {
	key := "test-key"

	if _, err := DecryptAES(key, []byte{1, 2, 3}); err == nil {
		t.Error("short data should fail")
	}
	if _, err := DecryptAES(key, []byte{}); err == nil {
		t.Error("empty data should fail")
	}
}

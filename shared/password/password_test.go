package password_test

import (
	"errors"
	"testing"

	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}

	if hash == "s3cret-pass" {
		t.Error("expected hash to differ from plaintext")
	}

	if err := password.Verify("s3cret-pass", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := password.Verify("wrong-pass", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for wrong password, got %v", err)
	}
}

func TestHashEmpty(t *testing.T) {
	if _, err := password.Hash(""); err == nil {
		t.Error("expected error hashing empty password")
	}
}

func TestVerifyEmptyInputs(t *testing.T) {
	tests := []struct {
		name     string
		password string
		hash     string
	}{
		{name: "empty password", password: "", hash: "some-hash"},
		{name: "empty hash", password: "some-pass", hash: ""},
		{name: "both empty", password: "", hash: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := password.Verify(tt.password, tt.hash); !errors.Is(err, password.ErrInvalidPassword) {
				t.Errorf("expected ErrInvalidPassword, got %v", err)
			}
		})
	}
}

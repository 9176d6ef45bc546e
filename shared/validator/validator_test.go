package validator_test

import (
	"strings"
	"testing"

	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/validator"
)

type bookingForm struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Email  string `json:"email"  validate:"required,email"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"name":"Asha","email":"asha@example.com","status":"pending"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"email":"asha@example.com"}`,
			wantErr: true,
		},
		{
			name:    "invalid email",
			body:    `{"name":"Asha","email":"not-an-email"}`,
			wantErr: true,
		},
		{
			name:    "unknown status",
			body:    `{"name":"Asha","email":"asha@example.com","status":"archived"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := bookingForm{}
			err := validator.Validate(strings.NewReader(tt.body), &form)

			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("asha@example.com", "email"); err != nil {
		t.Errorf("expected valid email, got %v", err)
	}

	if err := validator.ValidateVar("nope", "email"); err == nil {
		t.Error("expected error for invalid email")
	}
}

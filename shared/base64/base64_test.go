package base64_test

import (
	"strings"
	"testing"

	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/base64"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid png data url",
			input:    "data:image/png;base64,iVBORw0KGgo=",
			expected: "image/png",
		},
		{
			name:     "valid jpeg data url",
			input:    "data:image/jpeg;base64,/9j/4AAQ",
			expected: "image/jpeg",
		},
		{
			name:     "missing base64 marker",
			input:    "data:image/png",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "marker before prefix",
			input:    ";base64,data:",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := base64.GetContentType(tt.input)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestDataURL(t *testing.T) {
	url := base64.DataURL("image/png", []byte{0x89, 0x50, 0x4e, 0x47})

	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("expected data url prefix, got %q", url)
	}

	if base64.GetContentType(url) != "image/png" {
		t.Errorf("expected round-trip content type image/png, got %q", base64.GetContentType(url))
	}
}

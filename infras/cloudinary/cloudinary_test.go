package cloudinary_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/cloudinary"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel/mocks"
)

// A client without credentials must fail before any network call, so an
// already-expired context never surfaces as the error.
func TestUploadImage_NotConfigured(t *testing.T) {
	tests := []struct {
		name         string
		cloudName    string
		uploadPreset string
	}{
		{name: "missing cloud name", uploadPreset: "unsigned"},
		{name: "missing upload preset", cloudName: "demo"},
		{name: "missing both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.External.Cloudinary.CloudName = tt.cloudName
			cfg.External.Cloudinary.UploadPreset = tt.uploadPreset

			client := cloudinary.New(cfg, mocks.NewOtel())

			ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
			defer cancel()

			_, err := client.UploadImage(ctx, "menu", "dish.png", "image/png", []byte("png-bytes"))

			assert.ErrorIs(t, err, cloudinary.ErrNotConfigured)
		})
	}
}

func TestUploadError_Message(t *testing.T) {
	err := &cloudinary.UploadError{StatusCode: 401, Message: "Invalid upload preset"}

	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Invalid upload preset")
}

package cloudinary

//go:generate go run go.uber.org/mock/mockgen -source=./cloudinary.go -destination=./mocks/cloudinary_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
)

const (
	uploadURLFormat      = "https://api.cloudinary.com/v1_1/%s/image/upload"
	defaultUploadTimeout = 30 * time.Second

	formFieldFile         = "file"
	formFieldUploadPreset = "upload_preset"
	formFieldFolder       = "folder"

	otelAttrFolder   = "folder"
	otelAttrFileName = "file_name"
)

// ErrNotConfigured is returned before any network call when the cloud name
// or upload preset is missing from configuration.
var ErrNotConfigured = errors.New("cloudinary is not configured")

// UploadError carries the upstream HTTP status so callers can map it.
type UploadError struct {
	StatusCode int
	Message    string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("cloudinary upload failed with status %d: %s", e.StatusCode, e.Message)
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Cloudinary interface {
	UploadImage(ctx context.Context, folder, fileName, contentType string, fileData []byte) (url string, err error)
}

type cloudinaryImpl struct {
	Client *http.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *cloudinaryImpl) UploadImage(ctx context.Context, folder, fileName, contentType string, fileData []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelCloudinaryScope, constant.OtelCloudinaryScope+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	cloudName := svc.Config.External.Cloudinary.CloudName
	uploadPreset := svc.Config.External.Cloudinary.UploadPreset
	if cloudName == "" || uploadPreset == "" {
		return constant.Empty, ErrNotConfigured
	}

	if folder == "" {
		folder = svc.Config.External.Cloudinary.Folder
	}

	scope.SetAttributes(map[string]any{
		otelAttrFolder:   folder,
		otelAttrFileName: fileName,
	})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(formFieldFile, fileName)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err = part.Write(fileData); err != nil {
		return constant.Empty, fmt.Errorf("failed to build upload form: %w", err)
	}

	if err = writer.WriteField(formFieldUploadPreset, uploadPreset); err != nil {
		return constant.Empty, fmt.Errorf("failed to build upload form: %w", err)
	}
	if folder != "" {
		if err = writer.WriteField(formFieldFolder, folder); err != nil {
			return constant.Empty, fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if err = writer.Close(); err != nil {
		return constant.Empty, fmt.Errorf("failed to build upload form: %w", err)
	}

	endpoint := fmt.Sprintf(uploadURLFormat, cloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())

	resp, err := svc.Client.Do(req)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to reach cloudinary: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to read cloudinary response: %w", err)
	}

	var parsed uploadResponse
	if unmarshalErr := json.Unmarshal(respBody, &parsed); unmarshalErr != nil && resp.StatusCode < http.StatusMultipleChoices {
		return constant.Empty, fmt.Errorf("failed to decode cloudinary response: %w", unmarshalErr)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		message := parsed.Error.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}

		return constant.Empty, &UploadError{
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	return parsed.SecureURL, nil
}

func New(config *config.Config, otel otel.Otel) Cloudinary {
	timeout := defaultUploadTimeout
	if config.External.Cloudinary.UploadTimeoutSeconds > 0 {
		timeout = time.Duration(config.External.Cloudinary.UploadTimeoutSeconds) * time.Second
	}

	return &cloudinaryImpl{
		Client: &http.Client{Timeout: timeout},
		Config: config,
		otel:   otel,
	}
}

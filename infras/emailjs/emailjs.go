package emailjs

//go:generate go run go.uber.org/mock/mockgen -source=./emailjs.go -destination=./mocks/emailjs_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
)

const (
	defaultSendEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
	defaultSendTimeout  = 15 * time.Second

	otelAttrTemplate  = "template_id"
	otelAttrRecipient = "recipient"
)

// ErrNotConfigured is returned before any network call when the service,
// template, or public key is missing from configuration.
var ErrNotConfigured = errors.New("emailjs is not configured")

// ReservationEmailParams fills the reservation status template.
type ReservationEmailParams struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests string `json:"guests"`
	Status string `json:"status"`
}

type sendRequest struct {
	ServiceID      string                 `json:"service_id"`
	TemplateID     string                 `json:"template_id"`
	UserID         string                 `json:"user_id"`
	TemplateParams ReservationEmailParams `json:"template_params"`
}

type Mailer interface {
	SendReservationStatus(ctx context.Context, params ReservationEmailParams) error
}

type mailerImpl struct {
	Client *http.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *mailerImpl) SendReservationStatus(ctx context.Context, params ReservationEmailParams) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelEmailScopeName, constant.OtelEmailScopeName+".SendReservationStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	cfg := svc.Config.External.EmailJS
	if cfg.ServiceID == "" || cfg.TemplateID == "" || cfg.PublicKey == "" {
		return ErrNotConfigured
	}

	scope.SetAttributes(map[string]any{
		otelAttrTemplate:  cfg.TemplateID,
		otelAttrRecipient: params.Email,
	})

	payload, err := json.Marshal(sendRequest{
		ServiceID:      cfg.ServiceID,
		TemplateID:     cfg.TemplateID,
		UserID:         cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := svc.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach emailjs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return fmt.Errorf("emailjs rejected the request with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// endpoint falls back to the public EmailJS send API when no override is set.
func (svc *mailerImpl) endpoint() string {
	if svc.Config.External.EmailJS.Endpoint != "" {
		return svc.Config.External.EmailJS.Endpoint
	}

	return defaultSendEndpoint
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		Client: &http.Client{Timeout: defaultSendTimeout},
		Config: config,
		otel:   otel,
	}
}

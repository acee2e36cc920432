package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"dateminder/internal/types"
)

// emailJSAPIBase is the default EmailJS API base URL.
// Overridable in tests via EmailJSClientConfig.BaseURL.
const emailJSAPIBase = "https://api.emailjs.com"

// sendPath is the EmailJS REST send endpoint.
const sendPath = "/api/v1.0/email/send"

// EmailJSClientConfig holds the configuration for creating an EmailJSClient.
type EmailJSClientConfig struct {
	PrivateKey types.SecretString
	BaseURL    string // Override for testing; defaults to emailJSAPIBase
	Logger     *slog.Logger
}

// EmailJSClient implements EmailProvider against the EmailJS REST API.
// Each Send is exactly one HTTP POST: the documented provider rate limit is
// the caller's concern (the job runner paces between sends), and there is no
// retry layer.
type EmailJSClient struct {
	client     *http.Client
	privateKey types.SecretString
	baseURL    string
	logger     *slog.Logger
}

// NewEmailJSClient creates an EmailJSClient. The httpClient should carry a
// timeout; the worker uses 10 seconds.
func NewEmailJSClient(httpClient *http.Client, cfg EmailJSClientConfig) *EmailJSClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = emailJSAPIBase
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &EmailJSClient{
		client:     httpClient,
		privateKey: cfg.PrivateKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

// emailJSSendPayload is the JSON body of the EmailJS send request. The
// service, template and public key come from the store's delivery config;
// only the private key (accessToken) is process configuration.
type emailJSSendPayload struct {
	ServiceID      string                `json:"service_id"`
	TemplateID     string                `json:"template_id"`
	UserID         string                `json:"user_id"`
	AccessToken    string                `json:"accessToken"`
	TemplateParams emailJSTemplateParams `json:"template_params"`
}

// emailJSTemplateParams carries the variables the reminder template expects.
type emailJSTemplateParams struct {
	ToEmail   string `json:"to_email"`
	FromName  string `json:"from_name"`
	EventList string `json:"event_list"`
}

// Send submits one digest to one recipient. Any 2xx status is success.
//
// Error mapping:
//   - 429 Too Many Requests -> types.ErrCodeUpstreamRateLimited
//   - 5xx                   -> types.ErrCodeUpstreamUnavailable
//   - other non-2xx         -> types.ErrCodeUpstreamEmailProvider
//
// The response body is carried in the error message as diagnostic detail.
func (c *EmailJSClient) Send(ctx context.Context, input types.SendInput) error {
	payload := emailJSSendPayload{
		ServiceID:   input.Delivery.ServiceID,
		TemplateID:  input.Delivery.TemplateID,
		UserID:      input.Delivery.PubKey,
		AccessToken: c.privateKey.Unmask(),
		TemplateParams: emailJSTemplateParams{
			ToEmail:   input.To,
			FromName:  input.FromName,
			EventList: input.EventList,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalUnexpected,
			"failed to marshal EmailJS send payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalUnexpected,
			"failed to create EmailJS send request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return types.NewAppError(types.ErrCodeUpstreamEmailProvider,
			fmt.Sprintf("EmailJS request to %s failed", c.baseURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		detail = []byte("(response body unreadable)")
	}
	return c.mapError(resp.StatusCode, strings.TrimSpace(string(detail)))
}

// mapError translates an EmailJS HTTP error status into a types.AppError.
func (c *EmailJSClient) mapError(statusCode int, body string) error {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return types.NewAppError(types.ErrCodeUpstreamRateLimited,
			fmt.Sprintf("EmailJS rate limit exceeded (%d): %s", statusCode, body), nil)
	case statusCode >= 500:
		return types.NewAppError(types.ErrCodeUpstreamUnavailable,
			fmt.Sprintf("EmailJS server error (%d): %s", statusCode, body), nil)
	default:
		return types.NewAppError(types.ErrCodeUpstreamEmailProvider,
			fmt.Sprintf("EmailJS error (%d): %s", statusCode, body), nil)
	}
}

// Compile-time assertion that EmailJSClient satisfies EmailProvider.
var _ EmailProvider = (*EmailJSClient)(nil)

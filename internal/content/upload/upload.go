// Package upload relays admin image uploads to the external image host.
// Files are never written to local disk; the service holds no media storage.
package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/innohub/api/internal/platform/apperr"
)

const (
	uploadTimeout  = 30 * time.Second
	uploadRetries  = 3
	retryBaseWait  = 500 * time.Millisecond
	retryMaxWait   = 5 * time.Second
	imageFieldName = "image"
)

// hostResponse is the subset of the image host's reply we care about.
type hostResponse struct {
	URL string `json:"url"`
}

// Relay forwards image payloads to the configured third-party host.
type Relay struct {
	client *resty.Client
	logger *slog.Logger
}

// NewRelay builds a [Relay] against the given host endpoint. The API key is
// sent as a bearer credential on every request.
func NewRelay(hostURL, apiKey string, logger *slog.Logger) *Relay {
	client := resty.New().
		SetBaseURL(hostURL).
		SetAuthToken(apiKey).
		SetTimeout(uploadTimeout).
		SetRetryCount(uploadRetries).
		SetRetryWaitTime(retryBaseWait).
		SetRetryMaxWaitTime(retryMaxWait)

	return &Relay{client: client, logger: logger}
}

// Upload streams the file to the image host and returns the public URL.
func (relay *Relay) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var parsed hostResponse

	response, err := relay.client.R().
		SetContext(ctx).
		SetFileReader(imageFieldName, filename, file).
		SetResult(&parsed).
		Post("")

	if err != nil {
		relay.logger.Error("image_upload_transport_failed", slog.Any("error", err))
		return "", apperr.Upstream(fmt.Errorf("upload: image host unreachable: %w", err))
	}

	if response.IsError() {
		relay.logger.Error("image_upload_rejected",
			slog.Int("status", response.StatusCode()),
			slog.String("body", response.String()),
		)
		return "", apperr.Upstream(fmt.Errorf("upload: image host returned %d", response.StatusCode()))
	}

	if parsed.URL == "" {
		return "", apperr.Upstream(fmt.Errorf("upload: image host reply missing url"))
	}

	return parsed.URL, nil
}

package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/compozy/releaseresolver/internal/config"
	"github.com/compozy/releaseresolver/internal/domain"
)

// webReleaseRepository resolves releases against the release web origin,
// which answers GET {base}/{token} with a JSON release object.
type webReleaseRepository struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewWebReleaseRepository creates a ReleaseRepository over client. Empty
// arguments fall back to the buildx release origin and client label.
func NewWebReleaseRepository(client *http.Client, baseURL, userAgent string) ReleaseRepository {
	if client == nil {
		client = &http.Client{}
	}
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	return &webReleaseRepository{
		client:    client,
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// ReleaseURL joins baseURL and the release token without re-encoding the
// token.
func ReleaseURL(baseURL, version string) string {
	return strings.TrimRight(baseURL, "/") + "/" + version
}

// GetRelease fetches the release matching version.
func (r *webReleaseRepository) GetRelease(ctx context.Context, version string) (*domain.Release, error) {
	target := ReleaseURL(r.baseURL, version)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create release request for %s: %w", target, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", r.userAgent)
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response from %s: %w", ErrTransport, target, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: target}
	}
	return decodeRelease(body)
}

package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/compozy/releaseresolver/internal/config"
	"github.com/compozy/releaseresolver/internal/domain"
	"github.com/google/go-github/v74/github"
)

// githubReleaseRepository resolves releases through the GitHub REST API.
type githubReleaseRepository struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGithubReleaseRepository creates a ReleaseRepository backed by the
// GitHub REST API rooted at apiURL. No credentials are attached.
func NewGithubReleaseRepository(
	httpClient *http.Client,
	apiURL, userAgent, owner, repo string,
) (ReleaseRepository, error) {
	if err := config.ValidateGitHubOwnerRepo(owner, repo); err != nil {
		return nil, fmt.Errorf("invalid repository configuration: %w", err)
	}
	client := github.NewClient(httpClient)
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid api url %q: %w", apiURL, err)
		}
		client.BaseURL = baseURL
	}
	if userAgent != "" {
		client.UserAgent = userAgent
	}
	return &githubReleaseRepository{
		client: client,
		owner:  owner,
		repo:   repo,
	}, nil
}

// GetRelease fetches the latest release or the release tagged version.
func (r *githubReleaseRepository) GetRelease(ctx context.Context, version string) (*domain.Release, error) {
	path := fmt.Sprintf("repos/%s/%s/releases/tags/%s", r.owner, r.repo, version)
	if domain.IsLatest(version) {
		path = fmt.Sprintf("repos/%s/%s/releases/latest", r.owner, r.repo)
	}
	req, err := r.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create release request for %s: %w", path, err)
	}
	// Raw body so both sources share decodeRelease.
	var body bytes.Buffer
	if _, err := r.client.Do(ctx, req, &body); err != nil {
		if status, ok := githubErrorStatus(err); ok {
			if status == http.StatusNotFound {
				return nil, nil
			}
			return nil, &StatusError{StatusCode: status, URL: req.URL.String()}
		}
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return decodeRelease(body.Bytes())
}

// githubErrorStatus extracts the HTTP status from errors produced after the
// API answered.
func githubErrorStatus(err error) (int, bool) {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode, true
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode, true
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode, true
	}
	return 0, false
}

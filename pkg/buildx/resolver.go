// Package buildx resolves buildx release tokens ("latest" or a tag such as
// "v0.2.2") into release descriptors for setup workflows.
package buildx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/compozy/releaseresolver/internal/config"
	"github.com/compozy/releaseresolver/internal/domain"
	"github.com/compozy/releaseresolver/internal/repository"
	"github.com/compozy/releaseresolver/internal/usecase"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LatestAlias resolves to the most recent release.
const LatestAlias = domain.LatestAlias

type (
	Release           = domain.Release
	UpdateInfo        = usecase.UpdateInfo
	Config            = config.Config
	ReleaseRepository = repository.ReleaseRepository
	StatusError       = repository.StatusError
)

var (
	ErrTransport         = repository.ErrTransport
	ErrUnexpectedStatus  = repository.ErrUnexpectedStatus
	ErrMalformedResponse = repository.ErrMalformedResponse
	ErrEmptyVersion      = usecase.ErrEmptyVersion
)

// Resolver looks up releases. It holds no mutable state and is safe for
// concurrent use.
type Resolver struct {
	resolve *usecase.ResolveReleaseUseCase
	update  *usecase.CheckUpdateUseCase
}

type options struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
	repo       ReleaseRepository
}

// Option configures a Resolver built by New.
type Option func(*options)

// WithHTTPClient sets the client used for the lookup request.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithBaseURL replaces the release origin and path the token is appended to.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithUserAgent replaces the client label sent with the request.
func WithUserAgent(userAgent string) Option {
	return func(o *options) { o.userAgent = userAgent }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRepository replaces the lookup backend entirely.
func WithRepository(repo ReleaseRepository) Option {
	return func(o *options) { o.repo = repo }
}

// New creates a Resolver against the buildx release origin.
func New(opts ...Option) *Resolver {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	repo := o.repo
	if repo == nil {
		repo = repository.NewWebReleaseRepository(o.httpClient, o.baseURL, o.userAgent)
	}
	return newResolver(repo, o.logger)
}

// NewFromConfig creates a Resolver for the source selected in cfg, wrapped
// with retries when cfg.Retries is set.
func NewFromConfig(cfg *Config, logger *zap.Logger) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}
	var repo ReleaseRepository
	switch cfg.Source {
	case config.SourceAPI:
		ghRepo, err := repository.NewGithubReleaseRepository(httpClient, cfg.APIURL, cfg.UserAgent, cfg.Owner, cfg.Repo)
		if err != nil {
			return nil, err
		}
		repo = ghRepo
	default:
		repo = repository.NewWebReleaseRepository(httpClient, cfg.BaseURL, cfg.UserAgent)
	}
	repo = repository.NewRetryingReleaseRepository(repo, cfg.Retries, cfg.RetryDelay, logger)
	return newResolver(repo, logger), nil
}

// LoadConfig reads the resolver configuration from fs and the environment.
func LoadConfig(fs afero.Fs) (*Config, error) {
	return config.LoadConfig(fs)
}

func newResolver(repo ReleaseRepository, logger *zap.Logger) *Resolver {
	resolve := &usecase.ResolveReleaseUseCase{ReleaseRepo: repo, Logger: logger}
	return &Resolver{
		resolve: resolve,
		update:  &usecase.CheckUpdateUseCase{Resolver: resolve},
	}
}

// GetRelease resolves version. A nil release with a nil error means the
// upstream has no matching release; failures wrap ErrTransport,
// ErrUnexpectedStatus or ErrMalformedResponse.
func (r *Resolver) GetRelease(ctx context.Context, version string) (*Release, error) {
	return r.resolve.Execute(ctx, version)
}

// CheckUpdate reports whether the latest release is newer than current.
func (r *Resolver) CheckUpdate(ctx context.Context, current string) (*UpdateInfo, error) {
	return r.update.Execute(ctx, current)
}

// GetRelease resolves version against the buildx release origin with a
// default Resolver.
func GetRelease(ctx context.Context, version string) (*Release, error) {
	return New().GetRelease(ctx, version)
}

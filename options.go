package graphref

import (
	"net/http"
	"time"

	"github.com/goplotly/graphref/loader"
	"github.com/goplotly/graphref/logger"
)

// Option configures Load.
type Option func(*Options)

// Options holds all configuration for Load.
type Options struct {
	// Domain overrides the plotly domain from the local config file
	// and the compiled-in default.
	Domain string

	// SettingsDir overrides the local settings directory.
	SettingsDir string

	// HTTPClient is used for the schema fetch.
	HTTPClient *http.Client

	// Timeout for the schema fetch. Ignored when HTTPClient is set.
	Timeout time.Duration

	// Offline disables the network fetch.
	Offline bool

	// LogLevel for load progress messages.
	LogLevel logger.Level
}

func newOptions(opts ...Option) *Options {
	options := &Options{
		Timeout:  loader.DefaultTimeout,
		LogLevel: logger.LevelWarn,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *Options) loaderOptions() []loader.Option {
	log := logger.Default()
	log.SetLevel(o.LogLevel)

	opts := []loader.Option{
		loader.WithLogger(log),
		loader.WithOffline(o.Offline),
	}
	if o.Domain != "" {
		opts = append(opts, loader.WithDomain(o.Domain))
	}
	if o.SettingsDir != "" {
		opts = append(opts, loader.WithSettingsDir(o.SettingsDir))
	}
	if o.HTTPClient != nil {
		opts = append(opts, loader.WithHTTPClient(o.HTTPClient))
	} else if o.Timeout > 0 {
		opts = append(opts, loader.WithTimeout(o.Timeout))
	}
	return opts
}

// WithDomain overrides the plotly domain.
func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithSettingsDir overrides the local settings directory.
func WithSettingsDir(dir string) Option {
	return func(o *Options) {
		o.SettingsDir = dir
	}
}

// WithHTTPClient sets the HTTP client used for the schema fetch.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// WithTimeout sets the schema fetch timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithOffline disables the network fetch. Load then fails with a
// *loader.ConfigError unless a cached schema exists.
func WithOffline(offline bool) Option {
	return func(o *Options) {
		o.Offline = offline
	}
}

// WithLogLevel sets the log level for load progress messages.
func WithLogLevel(level logger.Level) Option {
	return func(o *Options) {
		o.LogLevel = level
	}
}

// Package loader obtains the graph reference document, preferring the
// local cached copy and falling back to a single fetch from the
// configured plotly domain.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goplotly/graphref/files"
	"github.com/goplotly/graphref/logger"
	"github.com/goplotly/graphref/schema"
)

const (
	// SchemaPath is appended to the plotly domain to form the fetch
	// URL.
	SchemaPath = "/plot-schema.json"

	// DefaultTimeout for the schema fetch.
	DefaultTimeout = 30 * time.Second
)

// ConfigError reports that no cached graph reference exists and the
// attempt to download one failed.
type ConfigError struct {
	// URL is the schema URL the fetch was attempted against.
	URL string

	// Err is the underlying transport or status error, if any.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"the schema used to validate figures has never been downloaded "+
			"to this machine; connect to a plotly server at least once to "+
			"obtain it (the attempt to download the schema from %q failed)",
		e.URL)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Loader resolves the graph reference document.
type Loader struct {
	httpClient *http.Client
	store      *files.Store
	domain     string
	offline    bool
	log        *logger.Logger
}

// Option configures the Loader.
type Option func(*Loader)

// WithDomain overrides the plotly domain, taking precedence over both
// the local config file and the compiled-in default.
func WithDomain(domain string) Option {
	return func(l *Loader) {
		l.domain = domain
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.httpClient = client
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.httpClient.Timeout = timeout
	}
}

// WithSettingsDir points the loader at a settings directory other than
// the default one under the user's home.
func WithSettingsDir(dir string) Option {
	return func(l *Loader) {
		l.store = files.NewStore(dir)
	}
}

// WithOffline disables the network fetch. Loading then fails with a
// ConfigError unless a cached schema exists.
func WithOffline(offline bool) Option {
	return func(l *Loader) {
		l.offline = offline
	}
}

// WithLogger sets the logger used for load progress.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		store:      files.NewStore(""),
		log:        logger.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Store returns the settings store the loader reads from.
func (l *Loader) Store() *files.Store {
	return l.store
}

// Load returns the graph reference document.
//
// When local file permissions allow, the cached schema and the
// configured domain are read from the settings directory. An empty
// cached schema triggers a single GET of <domain>/plot-schema.json; a
// transport error or non-2xx status yields a *ConfigError naming the
// URL. The returned document has all of its strings normalized to NFC.
func (l *Loader) Load(ctx context.Context) (schema.Document, error) {
	doc := schema.Document{}
	domain, _ := files.DefaultConfig()[files.DomainKey].(string)

	if l.store.CheckFilePermissions() {
		doc = l.store.LoadJSON(l.store.GraphReferenceFile())
		domain = l.store.Domain()
		if len(doc) > 0 {
			l.log.Debug("using cached graph reference from %s", l.store.GraphReferenceFile())
		}
	} else {
		l.log.Debug("settings directory %s not writable, using defaults", l.store.Dir())
	}

	if l.domain != "" {
		domain = l.domain
	}

	if len(doc) == 0 {
		fetched, err := l.Fetch(ctx, domain)
		if err != nil {
			return nil, err
		}
		doc = fetched
	}

	return Normalize(doc), nil
}

// Fetch downloads the graph reference from domain with a single GET.
// No retry; a failure is reported as a *ConfigError.
func (l *Loader) Fetch(ctx context.Context, domain string) (schema.Document, error) {
	url := domain + SchemaPath

	if l.offline {
		return nil, &ConfigError{URL: url}
	}

	l.log.Info("fetching graph reference from %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &ConfigError{URL: url, Err: err}
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, &ConfigError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ConfigError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema response: %w", err)
	}

	var doc schema.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema response: %w", err)
	}

	// TODO: send a hash query param so an unchanged schema is not
	// re-downloaded; needs server support.
	return doc, nil
}

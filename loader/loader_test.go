package loader

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goplotly/graphref/files"
	"github.com/goplotly/graphref/schema"
)

const minimalSchema = `{"traces": {"scatter": {}}, "layout": {"role": "object"}}`

func schemaServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != SchemaPath {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadFetchesWhenCacheEmpty(t *testing.T) {
	srv := schemaServer(t, http.StatusOK, minimalSchema)

	l := New(
		WithSettingsDir(t.TempDir()),
		WithDomain(srv.URL),
	)

	doc, err := l.Load(context.Background())
	require.NoError(t, err)

	traces, ok := doc[schema.TracesKey].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, traces, "scatter")
}

func TestLoadPrefersCachedSchema(t *testing.T) {
	dir := t.TempDir()
	store := files.NewStore(dir)
	require.NoError(t, store.EnsureLocalFiles())

	var cached schema.Document
	require.NoError(t, json.Unmarshal([]byte(minimalSchema), &cached))
	require.NoError(t, store.SaveJSON(store.GraphReferenceFile(), cached))

	// The domain points at a dead server; loading must not touch it.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	l := New(
		WithSettingsDir(dir),
		WithDomain(srv.URL),
	)

	doc, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, doc, schema.TracesKey)
}

func TestLoadDomainFromConfigFile(t *testing.T) {
	srv := schemaServer(t, http.StatusOK, minimalSchema)

	dir := t.TempDir()
	store := files.NewStore(dir)
	require.NoError(t, store.EnsureLocalFiles())

	cfg := files.DefaultConfig()
	cfg[files.DomainKey] = srv.URL
	require.NoError(t, store.SaveJSON(store.ConfigFile(), cfg))

	l := New(WithSettingsDir(dir))

	doc, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, doc, schema.TracesKey)
}

func TestLoadConfigErrorOnBadStatus(t *testing.T) {
	srv := schemaServer(t, http.StatusInternalServerError, "")

	l := New(
		WithSettingsDir(t.TempDir()),
		WithDomain(srv.URL),
	)

	_, err := l.Load(context.Background())
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, srv.URL+SchemaPath, cfgErr.URL)
	assert.Contains(t, err.Error(), srv.URL+SchemaPath)
}

func TestLoadConfigErrorOnConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	l := New(
		WithSettingsDir(t.TempDir()),
		WithDomain(url),
	)

	_, err := l.Load(context.Background())
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr, "transport failures must surface as ConfigError")
	assert.Equal(t, url+SchemaPath, cfgErr.URL)
	assert.Error(t, cfgErr.Unwrap())
}

func TestLoadOffline(t *testing.T) {
	l := New(
		WithSettingsDir(t.TempDir()),
		WithDomain("http://plotly.invalid"),
		WithOffline(true),
	)

	_, err := l.Load(context.Background())
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "http://plotly.invalid"+SchemaPath, cfgErr.URL)
}

func TestFetchParseFailureIsNotConfigError(t *testing.T) {
	srv := schemaServer(t, http.StatusOK, "{not json")

	l := New(
		WithSettingsDir(t.TempDir()),
		WithDomain(srv.URL),
	)

	_, err := l.Load(context.Background())
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.False(t, errors.As(err, &cfgErr),
		"a parse failure is not a configuration error")
}

func TestLoadWithoutSettingsDirPermissions(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	srv := schemaServer(t, http.StatusOK, minimalSchema)

	l := New(
		WithSettingsDir(filepath.Join(parent, "plotly")),
		WithDomain(srv.URL),
	)

	// Unwritable settings fall back to a plain fetch.
	doc, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, doc, schema.TracesKey)
}

// Package files manages the local plotly settings directory and the
// cached graph reference and configuration files inside it.
package files

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goplotly/graphref/schema"
)

// File names inside the settings directory.
const (
	// SettingsDirName is the per-user settings directory, created in
	// the user's home directory.
	SettingsDirName = ".plotly"

	// GraphReferenceFileName holds the cached graph reference
	// document.
	GraphReferenceFileName = ".graph_reference"

	// ConfigFileName holds the user configuration.
	ConfigFileName = ".config"
)

// Config keys.
const (
	DomainKey = "plotly_domain"
)

// Store provides access to the settings directory. The zero value is
// not usable; use NewStore.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. An empty dir selects the
// default location under the user's home directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = defaultDir()
	}
	return &Store{dir: dir}
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, SettingsDirName)
}

// Dir returns the settings directory path.
func (s *Store) Dir() string {
	return s.dir
}

// GraphReferenceFile returns the path of the cached graph reference.
func (s *Store) GraphReferenceFile() string {
	return filepath.Join(s.dir, GraphReferenceFileName)
}

// ConfigFile returns the path of the configuration file.
func (s *Store) ConfigFile() string {
	return filepath.Join(s.dir, ConfigFileName)
}

// DefaultConfig returns the compiled-in configuration defaults used
// when no local config file exists or a key is missing from it.
func DefaultConfig() map[string]any {
	return map[string]any{
		DomainKey:                    "https://plot.ly",
		"plotly_streaming_domain":    "stream.plot.ly",
		"plotly_api_domain":          "https://api.plot.ly",
		"plotly_ssl_verification":    true,
		"plotly_proxy_authorization": false,
		"world_readable":             true,
	}
}

// CheckFilePermissions reports whether the settings directory exists
// (or can be created) and is writable. When it returns false, callers
// fall back to compiled-in defaults and skip the local cache.
func (s *Store) CheckFilePermissions() bool {
	return s.EnsureLocalFiles() == nil
}

// EnsureLocalFiles creates the settings directory and seeds any
// missing files: an empty graph reference and the default config.
func (s *Store) EnsureLocalFiles() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	if _, err := os.Stat(s.GraphReferenceFile()); os.IsNotExist(err) {
		if err := s.SaveJSON(s.GraphReferenceFile(), schema.Document{}); err != nil {
			return err
		}
	}

	if _, err := os.Stat(s.ConfigFile()); os.IsNotExist(err) {
		if err := s.SaveJSON(s.ConfigFile(), DefaultConfig()); err != nil {
			return err
		}
	}

	// Probe writability of the directory itself.
	probe, err := os.CreateTemp(s.dir, ".permission_probe")
	if err != nil {
		return err
	}
	probe.Close()
	return os.Remove(probe.Name())
}

// LoadJSON reads a JSON mapping from path. Missing, unreadable, or
// malformed files yield an empty document; the caller treats an empty
// cached schema as "not downloaded yet".
func (s *Store) LoadJSON(path string) schema.Document {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Document{}
	}

	var doc schema.Document
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return schema.Document{}
	}
	return doc
}

// SaveJSON writes a JSON mapping to path, replacing any existing
// content. The write goes through a temp file in the same directory so
// readers never observe a partial file.
func (s *Store) SaveJSON(path string, doc map[string]any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Domain returns the configured plotly domain, falling back to the
// compiled-in default when the config file is missing or lacks the
// key.
func (s *Store) Domain() string {
	cfg := s.LoadJSON(s.ConfigFile())
	if domain, ok := cfg[DomainKey].(string); ok && domain != "" {
		return domain
	}
	domain, _ := DefaultConfig()[DomainKey].(string)
	return domain
}

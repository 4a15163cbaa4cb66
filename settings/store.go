package settings

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store persists Settings as a YAML document at a fixed path.
//
// Load and Save never fail observably: missing or malformed data
// normalizes to defaults, and write errors are swallowed (logged to
// the debug log only). Callers can treat both as total operations.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user settings location, falling back to
// the working directory when no user config dir exists
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "warpclock.yaml"
	}
	return filepath.Join(dir, "warpclock", "settings.yaml")
}

// Load reads and normalizes the stored settings. A missing file, an
// unreadable file, and an undecodable document all behave as "nothing
// stored".
func (st *Store) Load() Settings {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return Default()
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		log.Printf("settings: discarding undecodable %s: %v", st.path, err)
		return Default()
	}
	return Normalize(raw)
}

// Save writes the settings, creating parent directories as needed.
// Failures are logged and otherwise ignored.
func (st *Store) Save(s Settings) {
	data, err := yaml.Marshal(s)
	if err != nil {
		log.Printf("settings: marshal failed: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		log.Printf("settings: mkdir failed: %v", err)
		return
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		log.Printf("settings: write %s failed: %v", st.path, err)
	}
}

package categories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Backend is the storage port for the vendor→category mapping. The whole
// mapping is one slot: Load returns the full mapping and Save replaces it.
type Backend interface {
	Load() (map[string]string, error)
	Save(mapping map[string]string) error
}

// schemaVersion guards the persisted file layout against silent corruption
// across format changes.
const schemaVersion = 1

// mappingFile is the persisted JSON envelope.
type mappingFile struct {
	Version int               `json:"version"`
	Vendors map[string]string `json:"vendors"`
}

// FileBackend persists the mapping as a single JSON file.
type FileBackend struct {
	path string
}

// NewFileBackend creates a FileBackend at path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the mapping file. A missing file is an empty mapping, not an
// error. Files written before the versioned envelope (a bare vendor→category
// object) are still readable.
func (b *FileBackend) Load() (map[string]string, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading category mapping: %w", err)
	}

	var f mappingFile
	if err := json.Unmarshal(data, &f); err == nil && f.Version > 0 {
		if f.Vendors == nil {
			f.Vendors = map[string]string{}
		}
		return f.Vendors, nil
	}

	// Legacy layout: bare { vendor: category } object.
	var legacy map[string]string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("parsing category mapping: %w", err)
	}
	return legacy, nil
}

// Save writes the full mapping, creating the parent directory if needed.
func (b *FileBackend) Save(mapping map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("creating mapping dir: %w", err)
	}

	data, err := json.MarshalIndent(mappingFile{Version: schemaVersion, Vendors: mapping}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling category mapping: %w", err)
	}

	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("writing category mapping: %w", err)
	}
	return nil
}

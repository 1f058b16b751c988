// Package store persists the breed catalog as a flat JSON file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cat-encyclopedia/internal/logger"
	"cat-encyclopedia/internal/models"

	"github.com/dustin/go-humanize"
)

const component = "RecordStore"

var (
	errEmptyStore = errors.New("store file is empty")
	errNotList    = errors.New("store file does not hold a list of records")
)

// FileStore loads and saves breed records in a single JSON document.
type FileStore struct {
	path   string
	logger logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	if log == nil {
		log = logger.NoOp{}
	}
	return &FileStore{path: path, logger: log}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored records. A missing or undecodable file is replaced
// with the seed catalog, which is then returned. Only a failure to write the
// seed catalog is reported as an error.
func (s *FileStore) Load() ([]models.Breed, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Warning(component, "store file not found, creating seed catalog", map[string]interface{}{
			"path": s.path,
		})
		return s.reseed()
	}
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", s.path, err)
	}

	s.logger.Info(component, "store file found", map[string]interface{}{
		"path": s.path,
		"size": humanize.Bytes(uint64(len(data))),
	})

	records, err := s.decode(data)
	if err != nil {
		s.logger.Error(component, fmt.Errorf("decoding store %s: %w", s.path, err), map[string]interface{}{
			"action": "overwrite with seed catalog",
		})
		return s.reseed()
	}

	s.logger.Debug(component, "store decoded", map[string]interface{}{
		"records": len(records),
	})
	return records, nil
}

// Save rewrites the whole file. The write is not atomic.
func (s *FileStore) Save(records []models.Breed) error {
	data, err := encode(records)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing store %s: %w", s.path, err)
	}

	s.logger.Debug(component, "store saved", map[string]interface{}{
		"path":    s.path,
		"records": len(records),
		"size":    humanize.Bytes(uint64(len(data))),
	})
	return nil
}

func (s *FileStore) reseed() ([]models.Breed, error) {
	seed := models.SeedBreeds()
	if err := s.Save(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// decode accepts any JSON list. Elements are read field by field so a value
// of an unexpected type is kept as text instead of failing the whole file.
func (s *FileStore) decode(data []byte) ([]models.Breed, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errEmptyStore
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, errNotList
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}

	records := make([]models.Breed, len(raw))
	for i, element := range raw {
		record, err := decodeRecord(element)
		if err != nil {
			s.logger.Warning(component, "record is not an object, keeping it empty", map[string]interface{}{
				"record": i,
				"error":  err.Error(),
			})
		}
		records[i] = record
	}
	return records, nil
}

func decodeRecord(data json.RawMessage) (models.Breed, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return models.Breed{}, err
	}

	return models.Breed{
		Name:        text(fields["name"]),
		Description: text(fields["desc"]),
		Weight:      text(fields["weight"]),
		Height:      text(fields["height"]),
		LifeSpan:    text(fields["life_span"]),
		ImagePath:   text(fields["image_path"]),
	}, nil
}

// text renders a field as a string. Strings are unquoted, null and absent
// fields are empty, anything else keeps its JSON form.
func text(value json.RawMessage) string {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return ""
	}

	var str string
	if err := json.Unmarshal(value, &str); err == nil {
		return str
	}
	return string(value)
}

// encode keeps non-ASCII text literal so the file stays human-readable.
func encode(records []models.Breed) ([]byte, error) {
	if records == nil {
		records = []models.Breed{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package source reads raw episode records for the catalog builder. Each
// loader is responsible for its own storage format and maps rows into
// models.EpisodeRecord; the builder never sees where records came from.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"streamhub/pkg/models"
)

// ErrDataFormat marks a source whose payload is not a record list. A reload
// that fails with it keeps the previously published catalog.
var ErrDataFormat = errors.New("episode source is not a record list")

// Loader is implemented by each episode source (JSON file / sqlite table).
type Loader interface {
	Name() string
	Load(ctx context.Context) ([]models.EpisodeRecord, error)
}

// JSONFile loads records from a JSON file whose root is an array of
// EpisodeRecord objects.
type JSONFile struct {
	Path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{Path: path}
}

func (f *JSONFile) Name() string { return "json:" + f.Path }

func (f *JSONFile) Load(ctx context.Context) ([]models.EpisodeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}

	var records []models.EpisodeRecord
	if err := json.Unmarshal(b, &records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %s", ErrDataFormat, f.Path)
		}
		return nil, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	return records, nil
}

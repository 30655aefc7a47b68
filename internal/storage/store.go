package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// ValidatingSpec is a definition that can reject itself after unmarshal.
type ValidatingSpec interface {
	Validate() error
}

type Storer[T ValidatingSpec] interface {
	Get(string) T
	GetAll() map[string]T
	Ids() []string
}

// FileStore loads every *.json file under a directory tree as one spec,
// keyed by the file's base name. Loading aborts on the first unmarshal,
// validation, or duplicate-id failure; a store either holds a fully valid
// record set or does not exist. Records never change after construction.
type FileStore[T ValidatingSpec] struct {
	path    string
	records map[string]T
}

func NewFileStore[T ValidatingSpec](path string) (*FileStore[T], error) {
	s := &FileStore[T]{
		path:    path,
		records: map[string]T{},
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	return filepath.Walk(s.path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		id := strings.TrimSuffix(filepath.Base(path), ".json")
		if !identifierPattern.MatchString(id) {
			return fmt.Errorf("invalid id %q: must be alphanumeric", id)
		}

		spec, err := s.loadSpec(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", filepath.Base(path), err)
		}

		err = spec.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", filepath.Base(path), err)
		}

		// Error if the key is already in use
		_, ok := s.records[id]
		if ok {
			return fmt.Errorf("duplicate key detected: %s", id)
		}

		s.records[id] = spec
		return nil
	})
}

func (s *FileStore[T]) loadSpec(path string) (T, error) {
	var spec T

	file, err := os.Open(path)
	if err != nil {
		return spec, fmt.Errorf("opening file: %w", err)
	}

	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	jsonData, err := io.ReadAll(file)
	if err != nil {
		return spec, fmt.Errorf("reading file: %w", err)
	}

	err = json.Unmarshal(jsonData, &spec)
	if err != nil {
		return spec, fmt.Errorf("unmarshalling spec: %w", err)
	}

	return spec, nil
}

func (s *FileStore[T]) Get(id string) T {
	val, ok := s.records[id]

	if !ok {
		var nilVal T
		return nilVal
	}

	return val
}

func (s *FileStore[T]) GetAll() map[string]T {
	vals := map[string]T{}
	for id, v := range s.records {
		vals[id] = v
	}

	return vals
}

// Ids returns the loaded record ids in sorted order.
func (s *FileStore[T]) Ids() []string {
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of loaded records.
func (s *FileStore[T]) Count() int {
	return len(s.records)
}

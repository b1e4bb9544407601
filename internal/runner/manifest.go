package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var ErrInvalidManifest = errors.New("invalid manifest")

// Entry names one puzzle input and, optionally, the answers it must produce.
type Entry struct {
	Day     int    `yaml:"day"`
	Input   string `yaml:"input"`
	PartOne *int64 `yaml:"part_one,omitempty"`
	PartTwo *int64 `yaml:"part_two,omitempty"`
}

// Part returns which halves have an expected answer. An entry without any
// expectation solves both.
func (e Entry) Part() Part {
	switch {
	case e.PartOne != nil && e.PartTwo == nil:
		return One
	case e.PartOne == nil && e.PartTwo != nil:
		return Two
	}
	return Both
}

type Manifest struct {
	Puzzles []Entry `yaml:"puzzles"`
}

// LoadManifest reads a manifest file. Relative input paths are resolved
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest(data, filepath.Dir(path))
}

// ParseManifest decodes and validates a manifest, resolving inputs against dir.
// Unknown keys are rejected.
func ParseManifest(data []byte, dir string) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	for i := range m.Puzzles {
		if !filepath.IsAbs(m.Puzzles[i].Input) {
			m.Puzzles[i].Input = filepath.Join(dir, m.Puzzles[i].Input)
		}
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Puzzles) == 0 {
		return fmt.Errorf("%w: no puzzles listed", ErrInvalidManifest)
	}

	var errs []error
	seen := make(map[int]bool, len(m.Puzzles))
	for i, e := range m.Puzzles {
		if e.Day < 1 || e.Day > 25 {
			errs = append(errs, fmt.Errorf("%w: puzzles[%d]: day %d is outside 1..25", ErrInvalidManifest, i, e.Day))
		}
		if e.Input == "" {
			errs = append(errs, fmt.Errorf("%w: puzzles[%d]: input is required", ErrInvalidManifest, i))
		}
		if seen[e.Day] {
			errs = append(errs, fmt.Errorf("%w: puzzles[%d]: day %d listed twice", ErrInvalidManifest, i, e.Day))
		}
		seen[e.Day] = true
	}
	return errors.Join(errs...)
}

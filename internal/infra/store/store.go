// Package store persists the playlist of the first session between runs.
package store

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Settings stores playlist paths in a YAML file keyed by position.
type Settings struct {
	path string
}

// NewSettings creates a store backed by the file at path.
func NewSettings(path string) *Settings {
	return &Settings{path: path}
}

// Path returns the backing file path.
func (s *Settings) Path() string {
	return s.path
}

// Load reads the saved paths in order. Reading stops at the first
// missing key. A missing file yields an empty list.
func (s *Settings) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, errors.Wrap(err, "failed to read playlist file")
	}

	entries := make(map[string]string)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to parse playlist file")
	}

	paths := make([]string, 0, len(entries))
	for i := 0; ; i++ {
		p, ok := entries[strconv.Itoa(i)]
		if !ok {
			break
		}
		paths = append(paths, p)
	}
	if len(paths) < len(entries) {
		zlog.Warn().Msgf("playlist file %s has %d unreachable entries", s.path, len(entries)-len(paths))
	}
	return paths, nil
}

// Save replaces the file contents with paths.
// The file is written to a temporary sibling and renamed into place.
func (s *Settings) Save(paths []string) error {
	root := yaml.Node{Kind: yaml.MappingNode}
	for i, p := range paths {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strconv.Itoa(i), Style: yaml.DoubleQuotedStyle},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p},
		)
	}
	data, err := yaml.Marshal(&root)
	if err != nil {
		return errors.Wrap(err, "failed to encode playlist")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create playlist directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary playlist file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "failed to write playlist")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temporary playlist file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "failed to replace playlist file")
	}
	return nil
}

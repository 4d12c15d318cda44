package contract

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// OSSource is a ContentSource over a directory on disk.
type OSSource struct {
	root string
}

// NewOSSource creates a ContentSource rooted at dir.
func NewOSSource(dir string) *OSSource {
	return &OSSource{root: dir}
}

// Glob matches pattern against files under the root and returns
// root-relative, slash-separated paths in sorted order.
func (s *OSSource) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(s.root, m)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		paths = append(paths, filepath.ToSlash(rel))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadFile returns the contents of the file at the root-relative path.
func (s *OSSource) ReadFile(p string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, filepath.FromSlash(p)))
}

// MapSource is an in-memory ContentSource keyed by relative path. It backs
// loader tests and embedded fixtures.
type MapSource map[string][]byte

// Glob matches pattern segment-wise against the map keys.
func (s MapSource) Glob(pattern string) ([]string, error) {
	var paths []string
	for p := range s {
		ok, err := path.Match(pattern, p)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if ok {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadFile returns the contents stored under path p.
func (s MapSource) ReadFile(p string) ([]byte, error) {
	data, ok := s[p]
	if !ok {
		return nil, fmt.Errorf("read %q: %w", p, os.ErrNotExist)
	}
	return data, nil
}

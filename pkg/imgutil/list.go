package imgutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SupportedExtensions are the extensions picked up when no explicit pattern
// is given. Matching is case-insensitive.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg"}

// ListImages returns the absolute paths of top-level files in dir matching
// pattern, or the default image extensions when pattern is empty. The
// directory is created if absent. Results are deduplicated and sorted
// case-insensitively; there is no recursion into subdirectories.
func ListImages(dir, pattern string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("working directory is not set")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create working directory: %w", err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !matches(name, pattern) {
			continue
		}
		full := filepath.Join(abs, name)
		key := strings.ToLower(full)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		paths = append(paths, full)
	}

	sort.Slice(paths, func(i, j int) bool {
		a, b := strings.ToLower(paths[i]), strings.ToLower(paths[j])
		if a != b {
			return a < b
		}
		return paths[i] < paths[j]
	})

	return paths, nil
}

func matches(name, pattern string) bool {
	lower := strings.ToLower(name)
	if pattern != "" {
		ok, err := filepath.Match(strings.ToLower(pattern), lower)
		return err == nil && ok
	}
	ext := filepath.Ext(lower)
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

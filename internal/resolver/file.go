package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// errIsDirectory is reported when a candidate path names a directory.
var errIsDirectory = errors.New("is a directory")

// FileProvider reads a version from a single VERSION file.
type FileProvider struct {
	// path is the candidate file.
	path string
}

// NewFileProvider returns a provider for the file at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: filepath.Clean(path)}
}

// FileProviders returns one provider per candidate path, preserving order.
func FileProviders(paths []string) []Provider {
	providers := make([]Provider, 0, len(paths))
	for _, path := range paths {
		providers = append(providers, NewFileProvider(path))
	}

	return providers
}

// Name implements Provider.
func (p *FileProvider) Name() string {
	return "file:" + p.path
}

// Provide implements Provider.
func (p *FileProvider) Provide(_ context.Context) (string, error) {
	info, err := os.Stat(p.path)
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		return "", fmt.Errorf("%s: %w", p.path, errIsDirectory)
	}

	contents, err := os.ReadFile(p.path)
	if err != nil {
		return "", fmt.Errorf("read version file: %w", err)
	}

	return ParseVersionFile(string(contents)), nil
}

// ParseVersionFile returns the trimmed file contents. A `version = "1.2.3"`
// assignment is unwrapped to its value.
func ParseVersionFile(contents string) string {
	contents = strings.TrimSpace(contents)

	key, value, found := strings.Cut(contents, "=")
	if !found || !strings.EqualFold(strings.TrimSpace(key), "version") {
		return contents
	}

	return strings.Trim(strings.TrimSpace(value), `"'`)
}

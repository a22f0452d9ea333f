package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the ptdocs settings file.
type Config struct {
	// LogLevel is the minimum zap level written to stderr.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	// Version controls how the documented release is resolved.
	Version VersionSettings `yaml:"version"`
	// Docs describes the documentation project itself.
	Docs DocsSettings `yaml:"docs"`

	// path is the file the settings were loaded from, empty for defaults.
	path string
}

// VersionSettings configures the resolver chain.
type VersionSettings struct {
	// BaseDir anchors relative entries of Files. Defaults to the settings file's
	// directory, or the working directory when no file was loaded.
	BaseDir string `yaml:"base_dir,omitempty"`
	// Files are candidate VERSION files, tried in order. $VARS are expanded.
	Files []string `yaml:"files" validate:"dive,required"`
	// Describe is the argv of the describe command.
	Describe []string `yaml:"describe" validate:"omitempty,dive,required"`
	// DescribeTimeout bounds the describe subprocess.
	DescribeTimeout time.Duration `yaml:"describe_timeout"`
	// DisableDescribe skips the describe step entirely.
	DisableDescribe bool `yaml:"disable_describe"`
	// UseBuildInfo inserts the binary's module version before the fallback.
	UseBuildInfo bool `yaml:"use_build_info"`
	// Fallback is returned when nothing else yields a value.
	Fallback string `yaml:"fallback" validate:"required"`
}

// DocsSettings is the declarative part of the documentation build.
type DocsSettings struct {
	Project         string            `yaml:"project" validate:"required"`
	Author          string            `yaml:"author" validate:"required"`
	Copyright       string            `yaml:"copyright"`
	Language        string            `yaml:"language" validate:"omitempty,bcp47_language_tag"`
	Theme           string            `yaml:"theme" validate:"required,oneof=material rtd"`
	Extensions      []string          `yaml:"extensions" validate:"dive,required"`
	ExtraExtensions []string          `yaml:"extra_extensions,omitempty" validate:"omitempty,dive,required"`
	ThemeOptions    map[string]any    `yaml:"theme_options,omitempty"`
	Logo            string            `yaml:"logo,omitempty"`
	StaticPath      []string          `yaml:"static_path" validate:"dive,required"`
	TemplatesPath   []string          `yaml:"templates_path" validate:"dive,required"`
	CSSFiles        []string          `yaml:"css_files" validate:"dive,required"`
	ExcludePatterns []string          `yaml:"exclude_patterns" validate:"dive,required"`
	IncludeTodos    bool              `yaml:"include_todos"`
	Substitutions   map[string]string `yaml:"substitutions,omitempty" validate:"omitempty,dive,keys,required,endkeys,required"`
}

const (
	// DefaultConfigFilename is the settings filename written by `ptdocs init`.
	DefaultConfigFilename = "ptdocs.yaml"

	// DefaultDescribeTimeout bounds the describe subprocess.
	DefaultDescribeTimeout = 10 * time.Second

	// DefaultFallbackVersion is the last release documented by hand.
	DefaultFallbackVersion = "1.0.25"

	// DefaultFilePermissions is the default file permission for settings files.
	DefaultFilePermissions = 0o600

	// VersionFilename is the conventional name of a release file.
	VersionFilename = "VERSION"

	defaultProject = "PT - Clipboard to File Tool with Smart Version Management"
	defaultAuthor  = "Hadi Cahyadi"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")

	// searchNames are tried in every search directory, in order.
	//nolint:gochecknoglobals // Read-only lookup table.
	searchNames = []string{"ptdocs.yaml", "ptdocs.yml", ".ptdocs.yaml", ".ptdocs.yml"}
)

// Default returns settings reproducing the hand-written conf.py.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Version: VersionSettings{
			Files:           DefaultVersionFiles(),
			Describe:        []string{"git", "describe", "--tags"},
			DescribeTimeout: DefaultDescribeTimeout,
			Fallback:        DefaultFallbackVersion,
		},
		Docs: DocsSettings{
			Project:   defaultProject,
			Author:    defaultAuthor,
			Copyright: "2025, " + defaultAuthor,
			Language:  "en",
			Theme:     "material",
			Extensions: []string{
				"sphinx.ext.autodoc",
				"sphinx.ext.viewcode",
				"sphinx.ext.napoleon",
				"sphinx.ext.intersphinx",
				"sphinx.ext.todo",
				"sphinx.ext.coverage",
				"sphinx.ext.mathjax",
				"sphinx.ext.ifconfig",
				"sphinx.ext.githubpages",
			},
			Logo:          "_static/pt.svg",
			StaticPath:    []string{"_static"},
			TemplatesPath: []string{"_templates"},
			CSSFiles: []string{
				"custom.css",
				"https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.0.0/css/all.min.css",
			},
			ExcludePatterns: []string{"_build", "Thumbs.db", ".DS_Store"},
			IncludeTodos:    true,
		},
	}
}

// DefaultVersionFiles lists VERSION candidates: beside the docs and its parents.
// Machine-wide locations are only tried when listed in the settings file.
func DefaultVersionFiles() []string {
	return []string{
		VersionFilename,
		filepath.Join("..", VersionFilename),
		filepath.Join("..", "..", VersionFilename),
	}
}

// Path returns the file the settings were loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Find returns the first settings file found in the working directory,
// $HOME/.config/ptdocs or $HOME. It returns "" when none exists.
func Find() string {
	dirs := []string{"."}

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "ptdocs"), home)
	}

	for _, dir := range dirs {
		for _, name := range searchNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
	}

	return ""
}

// Load reads settings from path over the defaults and validates them.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	cfg.path = path

	if cfg.Version.BaseDir == "" {
		cfg.Version.BaseDir = filepath.Dir(path)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads path when given, otherwise the first file Find reports,
// otherwise the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = Find()
	}

	if path == "" {
		cfg := Default()

		return cfg, Validate(cfg)
	}

	return Load(path)
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills zero values with defaults and checks the settings.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}

	if settings.Version.DescribeTimeout <= 0 {
		settings.Version.DescribeTimeout = DefaultDescribeTimeout
	}

	settings.Version.Fallback = strings.TrimSpace(settings.Version.Fallback)
	if settings.Version.Fallback == "" {
		settings.Version.Fallback = DefaultFallbackVersion
	}

	if len(settings.Version.Describe) == 0 && !settings.Version.DisableDescribe {
		settings.Version.Describe = []string{"git", "describe", "--tags"}
	}

	if settings.Docs.Theme == "" {
		settings.Docs.Theme = "material"
	}

	if err := validate().Struct(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}

// ResolvedVersionFiles expands environment variables in Files and anchors
// relative entries at BaseDir.
func (v *VersionSettings) ResolvedVersionFiles() []string {
	result := make([]string, 0, len(v.Files))

	for _, file := range v.Files {
		file = os.ExpandEnv(file)
		if !filepath.IsAbs(file) && v.BaseDir != "" {
			file = filepath.Join(v.BaseDir, file)
		}

		result = append(result, filepath.Clean(file))
	}

	return result
}

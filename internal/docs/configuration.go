package docs

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/oshokin/ptdocs/internal/config"
)

// Configuration is the complete, read-only documentation build configuration.
type Configuration struct {
	project         string
	author          string
	copyright       string
	version         string
	language        string
	theme           Theme
	themeOptions    map[string]any
	extensions      []string
	logo            string
	staticPath      []string
	templatesPath   []string
	cssFiles        []string
	excludePatterns []string
	includeTodos    bool
	substitutions   map[string]string
}

// Variable is one named configuration value as the generator sees it.
type Variable struct {
	Name  string
	Value any
}

var (
	// ErrUnknownTheme is returned for theme keys without a preset.
	ErrUnknownTheme = errors.New("unknown theme")

	// errNoSettings is returned when Build gets nil settings.
	errNoSettings = errors.New("documentation settings are not set")
	// errEmptyVersion is returned when Build gets an empty version.
	errEmptyVersion = errors.New("version must not be empty")
)

// Build computes the configuration from settings and the resolved version.
func Build(settings *config.DocsSettings, version string) (*Configuration, error) {
	if settings == nil {
		return nil, errNoSettings
	}

	if strings.TrimSpace(version) == "" {
		return nil, errEmptyVersion
	}

	theme, err := LookupTheme(settings.Theme)
	if err != nil {
		return nil, err
	}

	extensions := make([]string, 0, len(settings.Extensions)+len(settings.ExtraExtensions)+1)
	for _, ext := range slices.Concat(settings.Extensions, settings.ExtraExtensions, []string{theme.Extension}) {
		if ext != "" && !slices.Contains(extensions, ext) {
			extensions = append(extensions, ext)
		}
	}

	return &Configuration{
		project:         settings.Project,
		author:          settings.Author,
		copyright:       settings.Copyright,
		version:         strings.TrimSpace(version),
		language:        settings.Language,
		theme:           theme,
		themeOptions:    mergeOptions(theme.Options(settings.Project), settings.ThemeOptions),
		extensions:      extensions,
		logo:            settings.Logo,
		staticPath:      slices.Clone(settings.StaticPath),
		templatesPath:   slices.Clone(settings.TemplatesPath),
		cssFiles:        slices.Clone(settings.CSSFiles),
		excludePatterns: slices.Clone(settings.ExcludePatterns),
		includeTodos:    settings.IncludeTodos,
		substitutions:   maps.Clone(settings.Substitutions),
	}, nil
}

// Project returns the project name.
func (c *Configuration) Project() string { return c.project }

// Author returns the author.
func (c *Configuration) Author() string { return c.author }

// Copyright returns the copyright line.
func (c *Configuration) Copyright() string { return c.copyright }

// Version returns the short version.
func (c *Configuration) Version() string { return c.version }

// Release returns the full release; it equals Version.
func (c *Configuration) Release() string { return c.version }

// Language returns the documentation language.
func (c *Configuration) Language() string { return c.language }

// Theme returns the theme preset.
func (c *Configuration) Theme() Theme { return c.theme }

// Logo returns the logo path, "" when unset.
func (c *Configuration) Logo() string { return c.logo }

// IncludeTodos reports whether todo directives are rendered.
func (c *Configuration) IncludeTodos() bool { return c.includeTodos }

// ThemeOptions returns a copy of the merged theme options.
func (c *Configuration) ThemeOptions() map[string]any { return maps.Clone(c.themeOptions) }

// Extensions returns a copy of the extension list.
func (c *Configuration) Extensions() []string { return slices.Clone(c.extensions) }

// StaticPath returns a copy of the static path list.
func (c *Configuration) StaticPath() []string { return slices.Clone(c.staticPath) }

// TemplatesPath returns a copy of the templates path list.
func (c *Configuration) TemplatesPath() []string { return slices.Clone(c.templatesPath) }

// CSSFiles returns a copy of the extra stylesheet list.
func (c *Configuration) CSSFiles() []string { return slices.Clone(c.cssFiles) }

// ExcludePatterns returns a copy of the source exclude patterns.
func (c *Configuration) ExcludePatterns() []string { return slices.Clone(c.excludePatterns) }

// Prolog returns the reStructuredText prolog defining |project_name|,
// |author|, |version| and any extra substitutions.
func (c *Configuration) Prolog() string {
	var builder strings.Builder

	builder.WriteString("\n")
	writeSubstitution(&builder, "project_name", c.project)
	writeSubstitution(&builder, "author", c.author)
	writeSubstitution(&builder, "version", c.version)

	names := make([]string, 0, len(c.substitutions))
	for name := range c.substitutions {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		writeSubstitution(&builder, name, c.substitutions[name])
	}

	return builder.String()
}

// Variables lists the configuration in conf.py order.
func (c *Configuration) Variables() []Variable {
	vars := []Variable{
		{Name: "project", Value: c.project},
		{Name: "copyright", Value: c.copyright},
		{Name: "author", Value: c.author},
		{Name: "version", Value: c.Version()},
		{Name: "release", Value: c.Release()},
		{Name: "extensions", Value: c.Extensions()},
		{Name: "templates_path", Value: c.TemplatesPath()},
		{Name: "exclude_patterns", Value: c.ExcludePatterns()},
		{Name: "language", Value: c.language},
		{Name: "html_theme", Value: c.theme.HTMLTheme},
		{Name: "html_theme_options", Value: c.ThemeOptions()},
	}

	if c.logo != "" {
		vars = append(vars, Variable{Name: "html_logo", Value: c.logo})
	}

	return append(vars,
		Variable{Name: "html_static_path", Value: c.StaticPath()},
		Variable{Name: "html_css_files", Value: c.CSSFiles()},
		Variable{Name: "latex_elements", Value: map[string]any{}},
		Variable{Name: "todo_include_todos", Value: c.includeTodos},
		Variable{Name: "rst_prolog", Value: c.Prolog()},
	)
}

func writeSubstitution(builder *strings.Builder, name, value string) {
	fmt.Fprintf(builder, ".. |%s| replace:: %s\n", name, value)
}

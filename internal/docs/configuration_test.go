package docs

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/ptdocs/internal/config"
)

func defaultSettings() *config.DocsSettings {
	settings := config.Default().Docs

	return &settings
}

// TestBuild_Material mirrors the hand-written material conf.py.
func TestBuild_Material(t *testing.T) {
	t.Parallel()

	cfg, err := Build(defaultSettings(), " 1.0.25\n")
	require.NoError(t, err)

	require.Equal(t, "1.0.25", cfg.Version())
	require.Equal(t, cfg.Version(), cfg.Release())
	require.Equal(t, "sphinx_material", cfg.Theme().HTMLTheme)
	require.Equal(t, "sphinx_material", cfg.Extensions()[len(cfg.Extensions())-1])
	require.Equal(t, cfg.Project(), cfg.ThemeOptions()["nav_title"])
	require.Equal(t, "green", cfg.ThemeOptions()["color_accent"])
	require.True(t, cfg.IncludeTodos())
}

// TestBuild_RTDWithOverrides merges user theme options over the preset and dedupes extensions.
func TestBuild_RTDWithOverrides(t *testing.T) {
	t.Parallel()

	settings := defaultSettings()
	settings.Theme = "rtd"
	settings.ExtraExtensions = []string{"sphinx.ext.todo", "sphinxarg.ext"}
	settings.ThemeOptions = map[string]any{"navigation_depth": 4, "logo_only": true}

	cfg, err := Build(settings, "v1.2.0")
	require.NoError(t, err)

	require.Equal(t, "sphinx_rtd_theme", cfg.Theme().HTMLTheme)
	require.Equal(t, 4, cfg.ThemeOptions()["navigation_depth"])
	require.Equal(t, true, cfg.ThemeOptions()["logo_only"])
	require.Equal(t, true, cfg.ThemeOptions()["collapse_navigation"])

	extensions := cfg.Extensions()
	require.Contains(t, extensions, "sphinxarg.ext")
	require.Contains(t, extensions, "sphinx_rtd_theme")

	seen := make(map[string]int)
	for _, ext := range extensions {
		seen[ext]++
	}

	require.Equal(t, 1, seen["sphinx.ext.todo"])
}

// TestBuild_Errors rejects nil settings, empty versions and unknown themes.
func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	_, err := Build(nil, "1.0.0")
	require.Error(t, err)

	_, err = Build(defaultSettings(), "  ")
	require.Error(t, err)

	settings := defaultSettings()
	settings.Theme = "alabaster"

	_, err = Build(settings, "1.0.0")
	require.ErrorIs(t, err, ErrUnknownTheme)
}

// TestConfiguration_Immutable checks that neither inputs nor returned values alias internal state.
func TestConfiguration_Immutable(t *testing.T) {
	t.Parallel()

	settings := defaultSettings()
	settings.ThemeOptions = map[string]any{"color_accent": "blue"}

	cfg, err := Build(settings, "1.0.0")
	require.NoError(t, err)

	settings.Extensions[0] = "mutated"
	settings.StaticPath[0] = "mutated"
	settings.ThemeOptions["color_accent"] = "red"

	extensions := cfg.Extensions()
	extensions[1] = "mutated"
	options := cfg.ThemeOptions()
	options["nav_title"] = "mutated"
	css := cfg.CSSFiles()
	css[0] = "mutated"

	require.Equal(t, "sphinx.ext.autodoc", cfg.Extensions()[0])
	require.Equal(t, "sphinx.ext.viewcode", cfg.Extensions()[1])
	require.Equal(t, "_static", cfg.StaticPath()[0])
	require.Equal(t, "blue", cfg.ThemeOptions()["color_accent"])
	require.Equal(t, cfg.Project(), cfg.ThemeOptions()["nav_title"])
	require.Equal(t, "custom.css", cfg.CSSFiles()[0])
}

// TestConfiguration_Prolog defines the standard substitutions first and extras sorted.
func TestConfiguration_Prolog(t *testing.T) {
	t.Parallel()

	settings := defaultSettings()
	settings.Substitutions = map[string]string{"repo": "github.com/cumulus13/pt", "license": "MIT"}

	cfg, err := Build(settings, "1.0.25")
	require.NoError(t, err)

	want := "\n" +
		".. |project_name| replace:: " + settings.Project + "\n" +
		".. |author| replace:: Hadi Cahyadi\n" +
		".. |version| replace:: 1.0.25\n" +
		".. |license| replace:: MIT\n" +
		".. |repo| replace:: github.com/cumulus13/pt\n"
	require.Equal(t, want, cfg.Prolog())
}

// TestRender_Python produces a conf.py with the expected assignments.
func TestRender_Python(t *testing.T) {
	t.Parallel()

	cfg, err := Build(defaultSettings(), "1.0.25")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Render(&out, cfg, FormatPython))

	conf := out.String()
	require.True(t, strings.HasPrefix(conf, "# Configuration file for the Sphinx documentation builder."))
	require.Contains(t, conf, "release = '1.0.25'\n")
	require.Contains(t, conf, "version = '1.0.25'\n")
	require.Contains(t, conf, "html_theme = 'sphinx_material'\n")
	require.Contains(t, conf, "todo_include_todos = True\n")
	require.Contains(t, conf, "latex_elements = {}\n")
	require.Contains(t, conf, "    'globaltoc_depth': 2,\n")
	require.Contains(t, conf, "    'master_doc': False,\n")
	require.Contains(t, conf, "html_logo = '_static/pt.svg'\n")
	require.Contains(t, conf, "rst_prolog = \"\"\"\n.. |project_name| replace::")
	require.Less(t, strings.Index(conf, "project = "), strings.Index(conf, "release = "))
}

// TestRender_YAMLAndJSON decode back to the same variables.
func TestRender_YAMLAndJSON(t *testing.T) {
	t.Parallel()

	cfg, err := Build(defaultSettings(), "v1.2.0")
	require.NoError(t, err)

	var yamlOut bytes.Buffer
	require.NoError(t, Render(&yamlOut, cfg, FormatYAML))

	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(yamlOut.Bytes(), &fromYAML))
	require.Equal(t, "v1.2.0", fromYAML["release"])
	require.Equal(t, "sphinx_material", fromYAML["html_theme"])
	require.True(t, strings.HasPrefix(yamlOut.String(), "project: "))

	var jsonOut bytes.Buffer
	require.NoError(t, Render(&jsonOut, cfg, FormatJSON))

	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &fromJSON))
	require.Equal(t, "v1.2.0", fromJSON["version"])
	require.Equal(t, cfg.Prolog(), fromJSON["rst_prolog"])
}

// TestRender_Prolog writes the substitutions without the leading blank line.
func TestRender_Prolog(t *testing.T) {
	t.Parallel()

	cfg, err := Build(defaultSettings(), "1.0.25")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Render(&out, cfg, FormatProlog))
	require.True(t, strings.HasPrefix(out.String(), ".. |project_name| replace:: "))
	require.Contains(t, out.String(), ".. |version| replace:: 1.0.25\n")
}

// TestParseFormat accepts aliases and rejects unknown values.
func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]Format{
		"python": FormatPython,
		"py":     FormatPython,
		" YML ":  FormatYAML,
		"json":   FormatJSON,
		"rst":    FormatProlog,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("toml")
	require.ErrorIs(t, err, ErrUnknownFormat)

	require.ErrorIs(t, Render(&bytes.Buffer{}, &Configuration{}, Format("toml")), ErrUnknownFormat)
}

// TestPythonString escapes quotes and uses triple quotes for plain multi-line text.
func TestPythonString(t *testing.T) {
	t.Parallel()

	require.Equal(t, `'it\'s'`, pythonString("it's"))
	require.Equal(t, `'C:\\docs'`, pythonString(`C:\docs`))
	require.Equal(t, "\"\"\"\na\nb\n\"\"\"", pythonString("\na\nb\n"))
	require.Equal(t, `'a\nb\\'`, pythonString("a\nb\\"))

	_, err := pythonLiteral(struct{}{}, 0)
	require.ErrorIs(t, err, errUnsupportedValue)
}

// TestRender_PythonNonFiniteFloat refuses theme options Python cannot parse.
func TestRender_PythonNonFiniteFloat(t *testing.T) {
	t.Parallel()

	for _, value := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		settings := defaultSettings()
		settings.ThemeOptions = map[string]any{"ratio": value}

		cfg, err := Build(settings, "1.0.25")
		require.NoError(t, err)

		var out bytes.Buffer
		require.ErrorIs(t, Render(&out, cfg, FormatPython), errUnsupportedValue)
	}

	literal, err := pythonLiteral(1.5, 0)
	require.NoError(t, err)
	require.Equal(t, "1.5", literal)
}

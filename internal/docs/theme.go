package docs

import (
	"fmt"
	"maps"
)

// Theme is a documentation theme preset.
type Theme struct {
	// Key is the settings name, e.g. "material".
	Key string
	// HTMLTheme is the value of html_theme.
	HTMLTheme string
	// Extension is appended to the extension list when the theme needs it.
	Extension string
	// options builds the preset html_theme_options for a project.
	options func(project string) map[string]any
}

// Options returns the preset theme options for project.
func (t Theme) Options(project string) map[string]any {
	if t.options == nil {
		return map[string]any{}
	}

	return t.options(project)
}

// Themes returns the supported presets keyed by settings name.
func Themes() map[string]Theme {
	return map[string]Theme{
		"material": {
			Key:       "material",
			HTMLTheme: "sphinx_material",
			Extension: "sphinx_material",
			options: func(project string) map[string]any {
				return map[string]any{
					"nav_title":               project,
					"globaltoc_depth":         2,
					"globaltoc_collapse":      true,
					"globaltoc_includehidden": true,
					"master_doc":              false,
					"color_primary":           "black",
					"color_accent":            "green",
				}
			},
		},
		"rtd": {
			Key:       "rtd",
			HTMLTheme: "sphinx_rtd_theme",
			Extension: "sphinx_rtd_theme",
			options: func(string) map[string]any {
				return map[string]any{
					"navigation_depth":            2,
					"collapse_navigation":         true,
					"includehidden":               true,
					"style_nav_header_background": "#000000",
				}
			},
		},
	}
}

// LookupTheme returns the preset named key.
func LookupTheme(key string) (Theme, error) {
	theme, ok := Themes()[key]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, key)
	}

	return theme, nil
}

// mergeOptions overlays overrides on the preset.
func mergeOptions(preset, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(preset)+len(overrides))
	maps.Copy(merged, preset)
	maps.Copy(merged, overrides)

	return merged
}

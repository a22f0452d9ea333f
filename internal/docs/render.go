package docs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a renderer.
type Format string

const (
	// FormatPython renders a Sphinx conf.py.
	FormatPython Format = "python"
	// FormatYAML renders the variables as a YAML mapping.
	FormatYAML Format = "yaml"
	// FormatJSON renders the variables as a JSON object.
	FormatJSON Format = "json"
	// FormatProlog renders only the reStructuredText prolog.
	FormatProlog Format = "prolog"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// confHeader opens every generated conf.py.
const confHeader = `# Configuration file for the Sphinx documentation builder.
# Generated by ptdocs. Edit ptdocs.yaml and regenerate instead of editing this file.

`

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatPython, FormatYAML, FormatJSON, FormatProlog}
}

// ParseFormat maps a flag value to a Format. "py" and "yml" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "python", "py", "conf.py":
		return FormatPython, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "prolog", "rst":
		return FormatProlog, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render writes cfg to w in the requested format.
func Render(w io.Writer, cfg *Configuration, format Format) error {
	switch format {
	case FormatPython:
		return renderPython(w, cfg)
	case FormatYAML:
		return renderYAML(w, cfg)
	case FormatJSON:
		return renderJSON(w, cfg)
	case FormatProlog:
		_, err := io.WriteString(w, strings.TrimPrefix(cfg.Prolog(), "\n"))

		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderPython(w io.Writer, cfg *Configuration) error {
	var builder strings.Builder

	builder.WriteString(confHeader)

	for _, variable := range cfg.Variables() {
		literal, err := pythonLiteral(variable.Value, 0)
		if err != nil {
			return fmt.Errorf("render %s: %w", variable.Name, err)
		}

		builder.WriteString(variable.Name)
		builder.WriteString(" = ")
		builder.WriteString(literal)
		builder.WriteString("\n")
	}

	_, err := io.WriteString(w, builder.String())

	return err
}

func renderYAML(w io.Writer, cfg *Configuration) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, variable := range cfg.Variables() {
		var value yaml.Node
		if err := value.Encode(variable.Value); err != nil {
			return fmt.Errorf("encode %s: %w", variable.Name, err)
		}

		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: variable.Name},
			&value,
		)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return encoder.Close()
}

func renderJSON(w io.Writer, cfg *Configuration) error {
	object := make(map[string]any, len(cfg.Variables()))
	for _, variable := range cfg.Variables() {
		object[variable.Name] = variable.Value
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(object); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

package docs

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// errUnsupportedValue is returned for values without a Python literal form.
var errUnsupportedValue = errors.New("unsupported value")

// pythonIndent is one nesting level in generated conf.py.
const pythonIndent = "    "

// pythonLiteral renders v as a Python literal. Collections are broken over
// lines and indented by depth levels.
//
//nolint:cyclop // A flat type switch reads better than a dispatch table here.
func pythonLiteral(v any, depth int) (string, error) {
	switch value := v.(type) {
	case nil:
		return "None", nil
	case string:
		return pythonString(value), nil
	case bool:
		if value {
			return "True", nil
		}

		return "False", nil
	case int:
		return strconv.Itoa(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case uint64:
		return strconv.FormatUint(value, 10), nil
	case float64:
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return "", fmt.Errorf("%w: non-finite float %v", errUnsupportedValue, value)
		}

		return strconv.FormatFloat(value, 'g', -1, 64), nil
	case []string:
		items := make([]any, len(value))
		for i, item := range value {
			items[i] = item
		}

		return pythonList(items, depth)
	case []any:
		return pythonList(value, depth)
	case map[string]string:
		items := make(map[string]any, len(value))
		for k, item := range value {
			items[k] = item
		}

		return pythonDict(items, depth)
	case map[string]any:
		return pythonDict(value, depth)
	default:
		return "", fmt.Errorf("%w: %T", errUnsupportedValue, v)
	}
}

// pythonString quotes s. Multi-line text uses a triple-quoted literal.
func pythonString(s string) string {
	if strings.Contains(s, "\n") && !strings.Contains(s, `"""`) && !strings.Contains(s, `\`) &&
		!strings.HasSuffix(s, `"`) {
		return `"""` + s + `"""`
	}

	var builder strings.Builder

	builder.WriteByte('\'')

	for _, r := range s {
		switch r {
		case '\\':
			builder.WriteString(`\\`)
		case '\'':
			builder.WriteString(`\'`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			builder.WriteRune(r)
		}
	}

	builder.WriteByte('\'')

	return builder.String()
}

func pythonList(items []any, depth int) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}

	inner := strings.Repeat(pythonIndent, depth+1)

	var builder strings.Builder

	builder.WriteString("[\n")

	for _, item := range items {
		literal, err := pythonLiteral(item, depth+1)
		if err != nil {
			return "", err
		}

		builder.WriteString(inner + literal + ",\n")
	}

	builder.WriteString(strings.Repeat(pythonIndent, depth) + "]")

	return builder.String(), nil
}

func pythonDict(items map[string]any, depth int) (string, error) {
	if len(items) == 0 {
		return "{}", nil
	}

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	inner := strings.Repeat(pythonIndent, depth+1)

	var builder strings.Builder

	builder.WriteString("{\n")

	for _, key := range keys {
		literal, err := pythonLiteral(items[key], depth+1)
		if err != nil {
			return "", fmt.Errorf("%s: %w", key, err)
		}

		builder.WriteString(inner + pythonString(key) + ": " + literal + ",\n")
	}

	builder.WriteString(strings.Repeat(pythonIndent, depth) + "}")

	return builder.String(), nil
}

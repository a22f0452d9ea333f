package render

import (
	"context"
	"errors"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/oshokin/ptdocs/internal/logger"
	"github.com/oshokin/ptdocs/internal/resolver"
)

// Sources prints every provider the resolver asked and what it answered.
func Sources(ctx context.Context, opts *Options) ([]resolver.Attempt, error) {
	ctx = logger.WithName(ctx, "sources")

	settings, err := loadSettings(ctx, opts)
	if err != nil {
		return nil, err
	}

	attempts := resolver.FromSettings(&settings.Version, opts.DescribeOptions...).Trace(ctx)

	t := table.NewWriter()
	t.SetOutputMirror(stdout(opts))
	t.AppendHeader(table.Row{"#", "Provider", "Result", "Detail"})

	for i, attempt := range attempts {
		t.AppendRow(table.Row{i + 1, attempt.Provider, result(attempt), detail(attempt)})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	return attempts, nil
}

func result(attempt resolver.Attempt) string {
	if attempt.OK {
		return "selected"
	}

	return "skipped"
}

func detail(attempt resolver.Attempt) string {
	switch {
	case attempt.OK:
		return attempt.Value
	case errors.Is(attempt.Err, os.ErrNotExist):
		return "not found"
	case attempt.Err != nil:
		return attempt.Err.Error()
	default:
		return ""
	}
}

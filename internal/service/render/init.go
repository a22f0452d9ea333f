package render

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/ptdocs/internal/config"
	"github.com/oshokin/ptdocs/internal/logger"
)

// errSettingsExist is returned when Init would overwrite a file without force.
var errSettingsExist = errors.New("settings file already exists, use --force to overwrite")

// Init writes a settings file holding the defaults to path.
func Init(ctx context.Context, path string, force bool) error {
	ctx = logger.WithName(ctx, "init")

	if path == "" {
		path = config.DefaultConfigFilename
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w", path, errSettingsExist)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	logger.InfoKV(ctx, "Sample settings written", "path", path)

	return nil
}

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var validLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

func normalizeConfig(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	switch cfg.Logging.Level {
	case "":
		cfg.Logging.Level = "info"
	case "warning":
		cfg.Logging.Level = "warn"
	case "off":
		cfg.Logging.Level = "disabled"
	}

	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	cfg.Library.Path = strings.TrimSpace(cfg.Library.Path)
	cfg.Font.Name = strings.TrimSpace(cfg.Font.Name)
	if cfg.Font.Size == 0 {
		cfg.Font.Size = defaultFontSize
	}
}

// validateConfig reports every invalid value at once.
func validateConfig(cfg *Config) error {
	var errs []error

	if cfg.Font.Size < 1 || cfg.Font.Size > 72 {
		errs = append(errs, fmt.Errorf("font.size must be between 1 and 72 (got: %d)", cfg.Font.Size))
	}
	if cfg.Window.Width < 0 {
		errs = append(errs, fmt.Errorf("window.width must be non-negative (got: %d)", cfg.Window.Width))
	}
	if cfg.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window.height must be non-negative (got: %d)", cfg.Window.Height))
	}

	if !slices.Contains(validLevels, cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: %s (got: %s)",
			strings.Join(validLevels, ", "), cfg.Logging.Level))
	}

	switch cfg.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: console, json (got: %s)", cfg.Logging.Format))
	}

	for _, dir := range cfg.Library.SearchPaths {
		if strings.TrimSpace(dir) == "" {
			errs = append(errs, errors.New("library.search_paths must not contain empty entries"))
			break
		}
	}

	return errors.Join(errs...)
}

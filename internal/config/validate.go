package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSuggestions(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSuggestions() error {
	s := c.Suggestions
	if s.MinDateGroup < 1 {
		return errors.New("suggestions.min_date_group must be at least 1")
	}
	if s.MinFilenameGroup < 1 {
		return errors.New("suggestions.min_filename_group must be at least 1")
	}
	if s.MinCameraGroup < 1 {
		return errors.New("suggestions.min_camera_group must be at least 1")
	}
	if s.MaxSuggestions < 1 {
		return errors.New("suggestions.max_suggestions must be at least 1")
	}
	if s.PreviewPhotos < 0 {
		return errors.New("suggestions.preview_photos must not be negative")
	}
	if s.FilenameOverlapThreshold <= 0 || s.FilenameOverlapThreshold > 1 {
		return errors.New("suggestions.filename_overlap_threshold must be in (0, 1]")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"prooflab/internal/api"
	"prooflab/internal/commit"
	"prooflab/internal/config"
	"prooflab/internal/gallery"
	"prooflab/internal/logging"
	"prooflab/internal/suggest"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the configured logger once. Logging never blocks a
// command: failures fall back to a no-op logger.
func (c *commandContext) ensureLogger(cfg *config.Config) *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// withStore opens the gallery store for the duration of one command.
func (c *commandContext) withStore(fn func(*gallery.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := gallery.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// withServices wires the API facades around a short-lived store handle.
func (c *commandContext) withServices(fn func(*api.GalleryService, *api.SuggestionService) error) error {
	return c.withStore(func(store *gallery.Store) error {
		cfg := c.config
		logger := c.ensureLogger(cfg)
		analyzer := suggest.NewAnalyzer(store, suggest.ThresholdsFromConfig(cfg), suggest.PolicyFromConfig(cfg), logger)
		engine := commit.NewEngine(store, cfg.ApplyLockPath(), logger)
		return fn(api.NewGalleryService(store), api.NewSuggestionService(analyzer, engine, logger))
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

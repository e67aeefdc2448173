package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/indico/fieldkit/internal/config"
	"github.com/indico/fieldkit/internal/errors"
	"github.com/indico/fieldkit/internal/filetypes"
	"github.com/indico/fieldkit/pkg/formstate"
	"github.com/indico/fieldkit/pkg/i18n"
)

// env is what every command needs: configuration, logger, translations and
// optionally metrics.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	catalog  *i18n.Catalog
	registry *prometheus.Registry
	metrics  *formstate.Metrics
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.New("F001").Wrap(err)
	}
	return config.Find(wd)
}

func newEnv(configPath string, stderr io.Writer) (*env, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(stderr, opts)
	} else {
		handler = slog.NewTextHandler(stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	catalog, err := i18n.Default(
		i18n.WithLogger(logger.With("component", "i18n")),
		i18n.WithMissingTranslationsLogging(cfg.LogLevel() <= slog.LevelDebug),
	)
	if err != nil {
		return nil, err
	}
	for _, path := range cfg.CatalogPaths() {
		if err := catalog.LoadFile(path); err != nil {
			return nil, err
		}
	}

	e := &env{cfg: cfg, logger: logger, catalog: catalog}
	if cfg.Metrics.Enabled {
		e.registry = prometheus.NewRegistry()
		e.metrics = formstate.NewMetrics(
			formstate.WithRegistry(e.registry),
			formstate.WithNamespace(cfg.Metrics.Namespace),
		)
	}
	return e, nil
}

// translator picks lang, or the configured locale when lang is empty.
func (e *env) translator(lang string) i18n.Translator {
	if lang == "" {
		lang = e.cfg.Locale
	}
	return e.catalog.Translator(lang)
}

func (e *env) dialog(eventID int, lang string, creator filetypes.Creator) *filetypes.Dialog {
	opts := []filetypes.Option{
		filetypes.WithTranslator(e.translator(lang)),
		filetypes.WithLogger(e.logger.With("component", "filetypes")),
		filetypes.WithMetrics(e.metrics),
	}
	if exts := e.cfg.FileTypes.Extensions; len(exts) > 0 {
		opts = append(opts, filetypes.WithExtensions(exts...))
	}
	return filetypes.NewDialog(eventID, creator, opts...)
}

package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/buildplan/internal/hclmanifest"
	"github.com/specialistvlad/buildplan/internal/manifest"
	"github.com/specialistvlad/buildplan/internal/yamlmanifest"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	readers []manifest.Reader
}

// NewApp is the constructor for the main application. Plans are written to
// outW (unless the config names an output file) and logs to logW. When no
// readers are given, the HCL and YAML readers are installed.
func NewApp(outW, logW io.Writer, cfg *Config, readers ...manifest.Reader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(readers) == 0 {
		readers = []manifest.Reader{hclmanifest.NewReader(), yamlmanifest.NewReader()}
	}
	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		readers: readers,
	}
}

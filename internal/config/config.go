// Package config reads the server's settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ironsheep/image-edit-mcp/internal/editor"
	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

// Environment variables recognised by Load.
const (
	EnvLogLevel     = "IMAGE_EDIT_LOG_LEVEL"
	EnvViewport     = "IMAGE_EDIT_VIEWPORT"
	EnvHistoryLimit = "IMAGE_EDIT_HISTORY_LIMIT"
	EnvComposition  = "IMAGE_EDIT_COMPOSITION"
)

// Config holds the server settings.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel slog.Level

	// ViewportWidth and ViewportHeight bound the rendered display image.
	ViewportWidth  int
	ViewportHeight int

	// HistoryLimit bounds the undo stack; 0 means unbounded.
	HistoryLimit int

	// Composition decides how absolute adjustments treat active toggles.
	Composition editor.Composition
}

// Default returns the settings used when no environment variable is set.
func Default() Config {
	return Config{
		LogLevel:       slog.LevelInfo,
		ViewportWidth:  imaging.DefaultViewportWidth,
		ViewportHeight: imaging.DefaultViewportHeight,
		Composition:    editor.ResetToggles,
	}
}

// Load returns Default overridden by the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup is Load with a custom variable lookup.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, errors.Wrapf(err, "%s", EnvLogLevel)
		}
	}

	if v, ok := lookup(EnvViewport); ok && v != "" {
		w, h, err := parseSize(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "%s", EnvViewport)
		}
		cfg.ViewportWidth, cfg.ViewportHeight = w, h
	}

	if v, ok := lookup(EnvHistoryLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, errors.Errorf("%s: want a non-negative integer, got %q", EnvHistoryLimit, v)
		}
		cfg.HistoryLimit = n
	}

	if v, ok := lookup(EnvComposition); ok {
		c, err := editor.ParseComposition(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "%s", EnvComposition)
		}
		cfg.Composition = c
	}

	return cfg, nil
}

// parseSize parses "WxH" with both sides positive.
func parseSize(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("want WIDTHxHEIGHT, got %q", s)
	}
	w, errW := strconv.Atoi(parts[0])
	h, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, errors.Errorf("want positive WIDTHxHEIGHT, got %q", s)
	}
	return w, h, nil
}

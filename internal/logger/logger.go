// Package logger builds the slog logger shared by the services and binaries.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration
type Config struct {
	Level          string `env:"LOG_LEVEL" envDefault:"INFO"`
	Format         string `env:"LOG_FORMAT" envDefault:"text"`
	FilePath       string `env:"LOG_FILE_PATH"` // empty disables file output
	FileMaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"10"`
	FileMaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"5"`
	FileMaxAgeDays int    `env:"LOG_FILE_MAX_AGE_DAYS" envDefault:"30"`
}

// New creates a logger writing to stdout and, when a file path is set, to a
// rotating log file. The returned closer releases the file.
func New(cfg Config) (*slog.Logger, io.Closer) {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg Config, console io.Writer) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}

	handlers := []slog.Handler{newHandler(console, cfg.Format, opts)}

	var closer io.Closer = nopCloser{}
	if cfg.FilePath != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		handlers = append(handlers, newHandler(file, cfg.Format, opts))
		closer = file
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer
	}
	return slog.New(newMultiHandler(handlers...)), closer
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multiHandler fans records out to several handlers
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}

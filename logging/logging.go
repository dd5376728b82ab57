// Package logging builds the program's zap logger. The terminal belongs to
// the renderer, so output only ever goes to a rotated file or nowhere
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/ai-entity/config"
)

const Name = "ai-entity"

// New returns a logger for cfg and a cleanup that flushes and closes the file.
// Logging is off unless cfg.Enabled or force is set; off means zap.NewNop and
// the standard library logger discarded
func New(cfg config.LogConfig, force bool) (*zap.Logger, func(), error) {
	if !cfg.Enabled && !force {
		log.SetOutput(io.Discard)
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return zap.NewNop(), func() {}, errors.Wrapf(err, "logging: create dir for %s", cfg.Path)
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(file), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).Named(Name)

	restore := zap.RedirectStdLog(logger)
	cleanup := func() {
		_ = logger.Sync()
		restore()
		log.SetOutput(io.Discard)
		_ = file.Close()
	}
	return logger, cleanup, nil
}

package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger for cfg. Output always goes to stderr; stdout is
// reserved for the startup line.
func New(cfg *Config) (*zap.Logger, error) {
	zc, err := baseConfig(cfg.Level)
	if err != nil {
		return nil, err
	}

	zc.Encoding = "json"
	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.DisableStacktrace = true
	}

	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// baseConfig picks zap's development preset for debug and the production
// preset at the requested level otherwise.
func baseConfig(level string) (zap.Config, error) {
	switch level {
	case "debug":
		return zap.NewDevelopmentConfig(), nil
	case "":
		return zap.NewProductionConfig(), nil
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.Config{}, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	return zc, nil
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals("ray_id").(string); ok && rid != "" {
		return l.With(zap.String("ray_id", rid))
	}
	return l
}

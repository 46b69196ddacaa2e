package utils

import (
	"log"

	"classtrack/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger builds the global logger from ENV and LOG_LEVEL.
func InitializeLogger() {
	var cfg zap.Config
	if IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(config.AppConfig.LogLevel)
	if err != nil {
		if IsProduction() {
			level = zapcore.InfoLevel
		} else {
			level = zapcore.DebugLevel
		}
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	Logger, err = cfg.Build(zap.Fields(zap.String("service", "classtrack")))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	// Middleware reaches the logger through zap.L().
	zap.ReplaceGlobals(Logger)
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

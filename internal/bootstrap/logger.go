package bootstrap

import (
	"io"

	"github.com/osse101/scribble/internal/config"
	"github.com/osse101/scribble/internal/logger"
)

// SetupLogger initializes the process logger from cfg, writing to w.
// Source locations are only added in development.
func SetupLogger(cfg *config.Config, w io.Writer) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)
	logger.InitLoggerWithWriter(loggerConfig, w)

	logger.Debug(LogMsgStartingScribble, "version", cfg.Version, "environment", cfg.Environment)
	logger.Debug(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	logger.Debug(LogMsgConfigurationLoaded,
		"data_dir", cfg.DataDir,
		"port", cfg.Port,
		"auth", cfg.APIKey != "")
}

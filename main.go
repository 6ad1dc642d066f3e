package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	app "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)
	defer func() {
		_ = logger.Sync()
	}()

	err := app.RunApp(logger, conf)
	switch {
	case err == nil:
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, app.ErrInterrupted):
		logger.Info("game abandoned", zap.Error(err))
	default:
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	path := flag.String("config", "./config.yml", "path to config")
	flag.Parse()

	return config.MustLoad(*path)
}

// initialize logger. Logs go to stderr, stdout belongs to the game.
func initLogger(conf *config.Config) *zap.Logger {
	level := zapcore.InfoLevel

	switch conf.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		panic(fmt.Errorf("failed to build logger: %w", err))
	}

	return logger
}

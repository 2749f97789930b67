package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"agent-marketplace/marketplace"
	"agent-marketplace/storage"
	"agent-marketplace/ui"
	"agent-marketplace/utils"
)

var (
	version = "0.1.0"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Agent Marketplace v%s\n", version)
		os.Exit(0)
	}

	// Load or create default configuration
	var config *utils.Config
	var actualConfigPath string
	var err error
	if *configPath != "" {
		actualConfigPath = *configPath
		config, err = utils.LoadConfig(actualConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	} else {
		actualConfigPath, err = utils.EnsureDefaultConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create default config: %v\n", err)
			os.Exit(1)
		}
		config, err = utils.LoadConfig(actualConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	logger, logFile := newLogger(config)
	if logFile != nil {
		defer logFile.Close()
	}

	logger.Info().Str("version", version).Str("config", actualConfigPath).Msg("starting agent marketplace")

	backend, err := storage.NewSQLite(config.Data.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", config.Data.DBPath).Msg("failed to open storage")
	}
	defer backend.Close()

	logger.Info().Str("path", config.Data.DBPath).Msg("storage initialized")

	catalog := marketplace.NewCatalog(backend, logger)
	if err := catalog.Initialize(); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize catalog")
	}

	session := marketplace.NewSession(backend, logger)
	session.Restore()

	keys := marketplace.NewKeys(backend, catalog, logger)
	keys.Load()

	app := ui.NewApp(config, actualConfigPath, catalog, session, keys, logger)

	logger.Info().Msg("application started")
	app.Run()
	logger.Info().Msg("application stopped")
}

// newLogger builds a console logger, teeing into a dated log file next to
// the database when the directory is writable.
func newLogger(config *utils.Config) (zerolog.Logger, *os.File) {
	level, err := zerolog.ParseLevel(config.Data.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var writer io.Writer = console
	var logFile *os.File

	logDir := filepath.Join(filepath.Dir(config.Data.DBPath), "logs")
	if err := os.MkdirAll(logDir, 0755); err == nil {
		logPath := filepath.Join(logDir, "app-"+time.Now().Format("2006-01-02")+".log")
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			logFile = f
			writer = zerolog.MultiLevelWriter(console, f)
		}
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logger, logFile
}

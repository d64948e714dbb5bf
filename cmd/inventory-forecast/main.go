package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/config"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/forecast"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/inventory"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/server"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/storage"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/constants"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/monthkey"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/output"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// newEngine constructs the storage engine the config selects. The second
// return closes it.
func newEngine(conf *config.Configuration) (storage.Engine, func(), error) {
	switch conf.Storage.Driver {
	case constants.StorageDriverSQLite:
		engine, err := storage.NewSQLiteEngine(conf.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return engine, func() { _ = engine.Close() }, nil
	default:
		return storage.NewMemoryEngine(), func() {}, nil
	}
}

func main() {
	configPath := flag.String("config", constants.DefaultConfigFile, "path to the configuration file")
	brand := flag.String("brand", "", "brand identifier to compute cards for; omitted, the editable month list is printed")
	logLevel := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	outputFormatFlag := flag.String("output-format", "", "output format (pretty, csv)")
	serve := flag.Bool("serve", false, "start the forecast API server")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configPath)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal(fmt.Sprintf("output format %s is not supported; use %s or %s", outputFormat, constants.OutputFormatPretty, constants.OutputFormatCSV),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	engine, closeEngine, err := newEngine(conf)
	if err != nil {
		logger.Fatal("failed to open storage engine",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer closeEngine()

	calc := inventory.NewCalculator(logger, conf.Forecast.StockWeek)
	store := forecast.NewStore(logger, engine)

	if *serve {
		apiHandler := server.NewHandler(logger, conf, calc, store)
		logger.Info("starting forecast API",
			zap.String("op", "main"),
			zap.String("address", conf.Server.Address),
		)
		if err := http.ListenAndServe(conf.Server.Address, apiHandler); err != nil {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	if *brand == "" {
		months, buildErr := forecast.BuildEditableMonths(conf.Forecast.LatestActualMonth, conf.Forecast.EditableMonths)
		if buildErr != nil {
			logger.Fatal("failed to build editable months",
				zap.String("op", "main"),
				zap.Error(buildErr),
			)
		}
		output.PrintMonths(months)
		return
	}

	cards := make(map[string]inventory.CardSet)
	for month, data := range conf.Months[*brand] {
		record := data
		cards[month] = calc.Cards(&record, monthkey.DaysIn(month, conf.DaysInMonth))
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(*brand, cards)
	case constants.OutputFormatCSV:
		output.CsvFormat(*brand, cards)
	}
}

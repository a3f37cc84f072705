package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Schera-ole/loganalyzer/internal/config"
	internalerrors "github.com/Schera-ole/loganalyzer/internal/errors"
	"github.com/Schera-ole/loganalyzer/internal/metrics"
	"github.com/Schera-ole/loganalyzer/internal/report"
	"github.com/Schera-ole/loganalyzer/internal/service"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func newLogger(level string, w io.Writer) (*zap.SugaredLogger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		atomicLevel,
	)
	return zap.New(core).Sugar(), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.NewAnalyzerConfig(args[0], args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid log level %q: %v\n", cfg.LogLevel, err)
		return 2
	}
	defer logger.Sync()

	logger.Debugw("configuration loaded",
		"log_file", cfg.LogPath,
		"output_file", cfg.OutputPath,
		"threshold", cfg.FailedLoginThreshold,
		"metrics_file", cfg.MetricsFile,
	)

	var recorder *metrics.Recorder
	var observer service.Recorder
	if cfg.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		observer = recorder
	}

	analysis := service.NewAnalysisService(logger, observer)
	result, err := analysis.Run(cfg.LogPath, cfg.FailedLoginThreshold)
	if err != nil {
		if errors.Is(err, internalerrors.ErrSourceUnavailable) {
			fmt.Fprintf(stderr, "Error: The file '%s' was not found.\n", cfg.LogPath)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	if err := report.WriteConsole(stdout, result); err != nil {
		logger.Errorw("failed to print report", "error", err)
		return 1
	}

	if err := report.SaveCSV(cfg.OutputPath, result); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "\nResults saved to %s\n", cfg.OutputPath)

	if recorder != nil {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warnw("failed to write metrics textfile", "path", cfg.MetricsFile, "error", err)
		}
	}

	return 0
}

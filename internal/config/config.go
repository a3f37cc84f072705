package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	internalerrors "github.com/Schera-ole/loganalyzer/internal/errors"
)

type AnalyzerConfig struct {
	LogPath              string
	OutputPath           string
	FailedLoginThreshold int64
	MetricsFile          string
	LogLevel             string
}

// NewAnalyzerConfig builds the configuration from command-line arguments
// (without the program name) and then lets environment variables override them.
func NewAnalyzerConfig(name string, args []string) (*AnalyzerConfig, error) {
	config := &AnalyzerConfig{
		LogPath:              DefaultLogPath,
		OutputPath:           DefaultOutputPath,
		FailedLoginThreshold: DefaultFailedLoginThreshold,
		MetricsFile:          "",
		LogLevel:             DefaultLogLevel,
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	logPath := flags.String("f", config.LogPath, "path to the access log")
	outputPath := flags.String("o", config.OutputPath, "path to the csv report")
	threshold := flags.Int64("t", config.FailedLoginThreshold, "failed logins allowed before an address is suspicious")
	metricsFile := flags.String("m", config.MetricsFile, "path to the prometheus textfile, empty disables it")
	logLevel := flags.String("l", config.LogLevel, "log level")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	envVars := map[string]*string{
		"LOG_FILE":     logPath,
		"OUTPUT_FILE":  outputPath,
		"METRICS_FILE": metricsFile,
		"LOG_LEVEL":    logLevel,
	}

	for envVar, flag := range envVars {
		if envValue := os.Getenv(envVar); envValue != "" {
			*flag = envValue
		}
	}

	if envThreshold := os.Getenv("FAILED_LOGIN_THRESHOLD"); envThreshold != "" {
		value, err := strconv.ParseInt(envThreshold, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FAILED_LOGIN_THRESHOLD value %q: %w", envThreshold, err)
		}
		*threshold = value
	}

	if *threshold < 0 {
		return nil, fmt.Errorf("%w: %d", internalerrors.ErrInvalidThreshold, *threshold)
	}

	config.LogPath = *logPath
	config.OutputPath = *outputPath
	config.FailedLoginThreshold = *threshold
	config.MetricsFile = *metricsFile
	config.LogLevel = *logLevel

	return config, nil
}

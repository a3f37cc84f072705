// Package config provides configuration for the log analyzer.
package config

const (
	// DefaultLogPath is the access log read when no path is configured.
	DefaultLogPath = "sample.log"

	// DefaultOutputPath is where the CSV report is written.
	DefaultOutputPath = "log_analysis_results.csv"

	// DefaultFailedLoginThreshold is the number of failed logins an address
	// may have before it is reported as suspicious.
	DefaultFailedLoginThreshold = 10

	// DefaultLogLevel is the zap level used for diagnostic output.
	DefaultLogLevel = "info"
)

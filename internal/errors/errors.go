package errors

import "errors"

var (
	// Source errors
	ErrSourceUnavailable = errors.New("file not found")

	// Configuration errors
	ErrInvalidThreshold = errors.New("invalid failed login threshold")

	// Report errors
	ErrNoReport    = errors.New("no analysis results to report")
	ErrReportWrite = errors.New("report write failed")
)

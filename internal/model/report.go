// Package models defines the data structures used throughout the log analyzer.
package models

// Count pairs a key, such as a source address or an endpoint, with the number
// of lines it was seen on.
type Count struct {
	// Key is the source address or request path
	Key string

	// Value is the number of matching lines
	Value int64
}

// Report is the aggregated result of a single pass over an access log.
type Report struct {
	// Requests lists request counts per source address, highest count first
	Requests []Count

	// TopEndpoint is the most frequently requested path. It is the zero Count
	// when no request line was recognized.
	TopEndpoint Count

	// Suspicious lists addresses whose failed login count exceeds Threshold
	Suspicious []Count

	// Threshold is the failed login count an address must exceed to be suspicious
	Threshold int64

	// LinesProcessed is the number of lines read from the log
	LinesProcessed int64
}

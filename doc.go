// Package loganalyzer implements a batch report generator for web-server access logs.
//
// A single pass over the log produces three aggregates:
//   - Requests: number of lines per source address (the first dotted-quad token of a line)
//   - Endpoints: number of quoted "GET <path> HTTP/1.1" or "POST <path> HTTP/1.1" requests per path
//   - Failed logins: number of lines carrying the "Invalid credentials" marker per source address
//
// The report lists addresses by request count, names the most requested
// endpoint and flags addresses whose failed login count exceeds a configured
// threshold. It is printed to the console and saved as a flat CSV file.
//
// Features:
//   - Configuration via command-line flags and environment variables
//   - Structured logging
//   - Optional run metrics in the Prometheus textfile format
//
// A missing or unreadable log aborts the run before any report is written.
package loganalyzer

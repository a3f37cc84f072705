// Package parser classifies access log lines.
//
// Each line is checked for a source address, a request path and the failed
// login marker. Lines matching nothing are not an error.
package parser

import (
	"regexp"
	"strings"
)

// FailedLoginMarker is the literal text, quotes included, that marks a failed login.
const FailedLoginMarker = `"Invalid credentials"`

var (
	// addressPattern matches four dot-separated groups of one to three digits.
	// Ranges are not validated.
	addressPattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

	endpointPattern = regexp.MustCompile(`"(?:GET|POST) (/[\w./-]*) HTTP/1\.1"`)
)

// Classification is what a single line contributes to the aggregates.
type Classification struct {
	Address     string
	HasAddress  bool
	Endpoint    string
	HasEndpoint bool
	FailedLogin bool
}

// ExtractAddress returns the first dotted-quad token in line.
func ExtractAddress(line string) (string, bool) {
	address := addressPattern.FindString(line)
	return address, address != ""
}

// ExtractEndpoint returns the path of the first quoted GET or POST request in line.
func ExtractEndpoint(line string) (string, bool) {
	match := endpointPattern.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// IsFailedLogin reports whether line carries the failed login marker.
func IsFailedLogin(line string) bool {
	return strings.Contains(line, FailedLoginMarker)
}

// Classify runs every extractor over line.
func Classify(line string) Classification {
	var c Classification
	c.Address, c.HasAddress = ExtractAddress(line)
	c.Endpoint, c.HasEndpoint = ExtractEndpoint(line)
	c.FailedLogin = IsFailedLogin(line)
	return c
}

// CountsFailedLogin reports whether the line increments a failed login counter.
// A marker without an address has nobody to attribute it to.
func (c Classification) CountsFailedLogin() bool {
	return c.FailedLogin && c.HasAddress
}

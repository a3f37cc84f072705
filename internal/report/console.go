// Package report renders an analysis report to the console and to CSV.
package report

import (
	"fmt"
	"io"

	internalerrors "github.com/Schera-ole/loganalyzer/internal/errors"
	models "github.com/Schera-ole/loganalyzer/internal/model"
)

// WriteConsole writes the human readable report to w.
func WriteConsole(w io.Writer, report *models.Report) error {
	if report == nil {
		return internalerrors.ErrNoReport
	}

	ew := &errWriter{w: w}

	ew.printf("%-20s%s\n", "IP Address", "Request Count")
	for _, c := range report.Requests {
		ew.printf("%-20s%d\n", c.Key, c.Value)
	}

	ew.printf("\nMost Frequently Accessed Endpoint:\n")
	ew.printf("%s (Accessed %d times)\n", report.TopEndpoint.Key, report.TopEndpoint.Value)

	if len(report.Suspicious) == 0 {
		ew.printf("\nNo suspicious activity detected.\n")
	} else {
		ew.printf("\nSuspicious Activity Detected:\n")
		ew.printf("%-20s%s\n", "IP Address", "Failed Login Attempts")
		for _, c := range report.Suspicious {
			ew.printf("%-20s%d\n", c.Key, c.Value)
		}
	}

	if ew.err != nil {
		return fmt.Errorf("%w: %w", internalerrors.ErrReportWrite, ew.err)
	}
	return nil
}

// errWriter keeps the first write error and skips every write after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

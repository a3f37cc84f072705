package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	internalerrors "github.com/Schera-ole/loganalyzer/internal/errors"
	models "github.com/Schera-ole/loganalyzer/internal/model"
)

// Header is the fixed first row of the CSV report.
var Header = []string{
	"IP Address",
	"Request Count",
	"Endpoint",
	"Access Count",
	"Suspicious IP",
	"Failed Login Count",
}

// Rows flattens the report into CSV records, header first. Address rows come
// first, then the single endpoint row, then one row per suspicious address.
func Rows(report *models.Report) [][]string {
	rows := make([][]string, 0, len(report.Requests)+len(report.Suspicious)+2)
	rows = append(rows, Header)

	for _, c := range report.Requests {
		rows = append(rows, []string{c.Key, formatCount(c.Value), "", "", "", ""})
	}

	rows = append(rows, []string{"", "", report.TopEndpoint.Key, formatCount(report.TopEndpoint.Value), "", ""})

	for _, c := range report.Suspicious {
		rows = append(rows, []string{c.Key, "", "", "", "Yes", formatCount(c.Value)})
	}
	return rows
}

// WriteCSV writes the report to w as CSV.
func WriteCSV(w io.Writer, report *models.Report) error {
	if report == nil {
		return internalerrors.ErrNoReport
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(Rows(report)); err != nil {
		return fmt.Errorf("%w: %w", internalerrors.ErrReportWrite, err)
	}
	return nil
}

// SaveCSV writes the report to fname, creating missing directories.
// A file that could not be written completely is removed.
func SaveCSV(fname string, report *models.Report) (err error) {
	if report == nil {
		return internalerrors.ErrNoReport
	}

	dir := filepath.Dir(fname)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: error creating directory: %w", internalerrors.ErrReportWrite, err)
	}

	file, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("%w: error creating file: %w", internalerrors.ErrReportWrite, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("%w: error closing file: %w", internalerrors.ErrReportWrite, closeErr)
		}
		if err != nil {
			os.Remove(fname)
		}
	}()

	return WriteCSV(file, report)
}

func formatCount(value int64) string {
	return strconv.FormatInt(value, 10)
}

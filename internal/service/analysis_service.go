// Package service provides the aggregation layer of the log analyzer.
package service

import (
	"fmt"
	"sort"

	"github.com/bitfield/script"
	"go.uber.org/zap"

	internalerrors "github.com/Schera-ole/loganalyzer/internal/errors"
	models "github.com/Schera-ole/loganalyzer/internal/model"
	"github.com/Schera-ole/loganalyzer/internal/parser"
	"github.com/Schera-ole/loganalyzer/internal/repository"
)

// Recorder receives every classified line and the final report.
type Recorder interface {
	ObserveLine(c parser.Classification)
	ObserveReport(report *models.Report)
}

type nopRecorder struct{}

func (nopRecorder) ObserveLine(parser.Classification) {}

func (nopRecorder) ObserveReport(*models.Report) {}

// AnalysisService aggregates access log lines into request, endpoint and
// failed login counts.
type AnalysisService struct {
	// requests maps source address -> number of lines
	requests repository.Repository

	// endpoints maps request path -> number of lines
	endpoints repository.Repository

	// failedLogins maps source address -> number of failed login lines
	failedLogins repository.Repository

	linesProcessed int64

	recorder Recorder
	logger   *zap.SugaredLogger
}

// NewAnalysisService creates a service backed by in-memory storage.
// A nil recorder disables run metrics.
func NewAnalysisService(logger *zap.SugaredLogger, recorder Recorder) *AnalysisService {

	return NewAnalysisServiceWithRepositories(
		repository.NewMemStorage(),
		repository.NewMemStorage(),
		repository.NewMemStorage(),
		logger,
		recorder,
	)
}

// NewAnalysisServiceWithRepositories creates a service over the given counters.
func NewAnalysisServiceWithRepositories(
	requests repository.Repository,
	endpoints repository.Repository,
	failedLogins repository.Repository,
	logger *zap.SugaredLogger,
	recorder Recorder,
) *AnalysisService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AnalysisService{
		requests:     requests,
		endpoints:    endpoints,
		failedLogins: failedLogins,
		recorder:     recorder,
		logger:       logger,
	}
}

// ObserveLine classifies a single line and updates every counter it affects.
func (s *AnalysisService) ObserveLine(line string) {
	c := parser.Classify(line)
	s.linesProcessed++

	if c.HasAddress {
		s.requests.Increment(c.Address)
	}
	if c.HasEndpoint {
		s.endpoints.Increment(c.Endpoint)
	}
	if c.CountsFailedLogin() {
		s.failedLogins.Increment(c.Address)
	}
	s.recorder.ObserveLine(c)
}

// AnalyzeLines observes each line in order.
func (s *AnalysisService) AnalyzeLines(lines []string) {
	for _, line := range lines {
		s.ObserveLine(line)
	}
}

// AnalyzeFile replaces the current counts with the counts from the log at path.
//
// If the file cannot be read, the returned error wraps ErrSourceUnavailable
// and the service holds no counts.
func (s *AnalysisService) AnalyzeFile(path string) error {
	s.Reset()

	lines, err := script.File(path).Slice()
	if err != nil {
		s.logger.Errorw("cannot read access log", "path", path, "error", err)
		return fmt.Errorf("%w: %s: %w", internalerrors.ErrSourceUnavailable, path, err)
	}
	s.logger.Debugw("access log loaded", "path", path, "lines", len(lines))

	s.AnalyzeLines(lines)

	s.logger.Infow("access log analyzed",
		"path", path,
		"lines", s.linesProcessed,
		"addresses", s.requests.Len(),
		"endpoints", s.endpoints.Len(),
		"failed_login_addresses", s.failedLogins.Len(),
	)
	return nil
}

// Run analyzes the log at path and builds a report with the given threshold.
// The report is nil whenever an error is returned.
func (s *AnalysisService) Run(path string, threshold int64) (*models.Report, error) {
	if err := s.AnalyzeFile(path); err != nil {
		return nil, err
	}
	return s.BuildReport(threshold), nil
}

// BuildReport derives the report from the current counts.
func (s *AnalysisService) BuildReport(threshold int64) *models.Report {
	report := &models.Report{
		Requests:       s.SortedRequests(),
		TopEndpoint:    s.TopEndpoint(),
		Suspicious:     s.Suspicious(threshold),
		Threshold:      threshold,
		LinesProcessed: s.linesProcessed,
	}
	s.recorder.ObserveReport(report)
	return report
}

// SortedRequests returns request counts per address, highest first.
// Addresses with equal counts keep the order they first appeared in.
func (s *AnalysisService) SortedRequests() []models.Count {
	counts := s.requests.List()
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Value > counts[j].Value
	})
	return counts
}

// TopEndpoint returns the most requested path. On a tie the path seen first
// wins. With no recognized requests it returns the zero Count.
func (s *AnalysisService) TopEndpoint() models.Count {
	var top models.Count
	for _, c := range s.endpoints.List() {
		if c.Value > top.Value {
			top = c
		}
	}
	return top
}

// Suspicious returns addresses whose failed login count exceeds threshold,
// in the order they first failed.
func (s *AnalysisService) Suspicious(threshold int64) []models.Count {
	var result []models.Count
	for _, c := range s.failedLogins.List() {
		if c.Value > threshold {
			result = append(result, c)
		}
	}
	return result
}

// RequestCount returns the number of lines whose first address is address.
func (s *AnalysisService) RequestCount(address string) int64 {
	return s.requests.Get(address)
}

// EndpointCount returns the number of requests recognized for path.
func (s *AnalysisService) EndpointCount(path string) int64 {
	return s.endpoints.Get(path)
}

// FailedLoginCount returns the number of failed login lines for address.
func (s *AnalysisService) FailedLoginCount(address string) int64 {
	return s.failedLogins.Get(address)
}

// LinesProcessed returns the number of lines observed since the last reset.
func (s *AnalysisService) LinesProcessed() int64 {
	return s.linesProcessed
}

// Reset drops every count.
func (s *AnalysisService) Reset() {
	s.requests.Reset()
	s.endpoints.Reset()
	s.failedLogins.Reset()
	s.linesProcessed = 0
}

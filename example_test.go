package loganalyzer_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/Schera-ole/loganalyzer/internal/report"
	"github.com/Schera-ole/loganalyzer/internal/service"
)

// Example of how to aggregate lines with the service layer
func Example_analysisService() {
	analysis := service.NewAnalysisService(nil, nil)

	analysis.AnalyzeLines([]string{
		`192.168.1.1 - - [03/Dec/2024:10:12:34 +0000] "GET /home HTTP/1.1" 200 512`,
		`192.168.1.1 - - [03/Dec/2024:10:12:35 +0000] "GET /home HTTP/1.1" 200 512`,
		`192.168.1.1 - - [03/Dec/2024:10:12:36 +0000] "GET /home HTTP/1.1" 200 512`,
		`203.0.113.5 - - [03/Dec/2024:10:12:37 +0000] "GET /home HTTP/1.1" 200 512`,
	})

	fmt.Printf("192.168.1.1: %d\n", analysis.RequestCount("192.168.1.1"))
	fmt.Printf("203.0.113.5: %d\n", analysis.RequestCount("203.0.113.5"))
	fmt.Printf("/home: %d\n", analysis.EndpointCount("/home"))
	// Output:
	// 192.168.1.1: 3
	// 203.0.113.5: 1
	// /home: 4
}

// Example of how to render a report as CSV
func Example_csvReport() {
	analysis := service.NewAnalysisService(nil, nil)
	for i := 0; i < 12; i++ {
		analysis.ObserveLine(`203.0.113.5 - - [03/Dec/2024:10:13:00 +0000] "POST /login HTTP/1.1" 401 128 "Invalid credentials"`)
	}

	if err := report.WriteCSV(os.Stdout, analysis.BuildReport(10)); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
	}
	// Output:
	// IP Address,Request Count,Endpoint,Access Count,Suspicious IP,Failed Login Count
	// 203.0.113.5,12,,,,
	// ,,/login,12,,
	// 203.0.113.5,,,,Yes,12
}

// Simple test to demonstrate basic functionality
func TestExampleBasic(t *testing.T) {
	analysis := service.NewAnalysisService(nil, nil)

	analysis.ObserveLine(`10.0.0.1 - - [03/Dec/2024:10:12:34 +0000] "POST /login HTTP/1.1" 401 128 "Invalid credentials"`)

	if got := analysis.FailedLoginCount("10.0.0.1"); got != 1 {
		t.Errorf("Expected 1 failed login, got %d", got)
	}

	result := analysis.BuildReport(10)
	if len(result.Suspicious) != 0 {
		t.Errorf("Expected no suspicious addresses, got %v", result.Suspicious)
	}
}

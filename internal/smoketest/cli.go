package smoketest

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/rotoblogs/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "smoke_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the smoke test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Rotoblogs Smoke Test Tool
=========================

Generates a sample blogs catalog and verifies a running blog rotation service.

Usage:
  go run cmd/smoke-test/main.go [options]

Options:
  -url string
        Base URL of the service; empty skips the live checks (default "http://localhost:5000")
  -blogs int
        Number of catalog records to generate; 0 skips generation (default 0)
  -workers int
        Number of concurrent lookup workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for the generated catalog (default: generated_blogs_TIMESTAMP.json)
  -log string
        Log file for test output (default: smoke_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Verify a locally running service
  go run cmd/smoke-test/main.go

  # Generate a 35-record catalog for the service to load at startup
  go run cmd/smoke-test/main.go -url "" -blogs 35 -output blogs.json

  # Generate and then verify against a staging host
  go run cmd/smoke-test/main.go -blogs 100 -url http://staging:5000
`)
}

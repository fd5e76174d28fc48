package smoketest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/rotoblogs/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	filePermission      = 0600
)

// Run generates a catalog file, verifies a running service, or both, depending
// on the configuration.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting blogs smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("blogs", config.NumBlogs),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	if config.NumBlogs > 0 {
		blogs, err := generateCatalog(ctx, config, stats)
		if err != nil {
			return fmt.Errorf("catalog generation failed: %w", err)
		}
		if err := saveCatalogToFile(ctx, config, blogs); err != nil {
			return fmt.Errorf("catalog save failed: %w", err)
		}
	}

	if config.BaseURL != "" {
		if err := verifyService(ctx, config, stats); err != nil {
			return err
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "smoke test completed successfully")
	return nil
}

// verifyService runs the read-only checks against a live service.
func verifyService(ctx context.Context, config *Config, stats *Stats) error {
	now := time.Now()

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	client := newHTTPClient(config.Timeout)

	// Step 2: Fetch the full catalog and today's window
	var all allResponse
	if code, err := client.getJSON(ctx, config.BaseURL+"/api/blogs/all", &all); err != nil || code != StatusOK {
		return fmt.Errorf("fetching full catalog failed (status %d): %w", code, err)
	}

	var daily dailyResponse
	if code, err := client.getJSON(ctx, config.BaseURL+"/api/blogs", &daily); err != nil || code != StatusOK {
		return fmt.Errorf("fetching daily window failed (status %d): %w", code, err)
	}

	// Step 3: Verify the window against local rotation math
	if err := verifyDaily(&daily, all.Count, now); err != nil {
		return fmt.Errorf("daily window verification failed: %w", err)
	}
	if err := verifyWindowMembership(&daily, &all, now); err != nil {
		return fmt.Errorf("window membership verification failed: %w", err)
	}

	// Step 4: Resolve every player in the window concurrently
	players := make([]string, 0, len(daily.Blogs))
	for _, b := range daily.Blogs {
		players = append(players, b.PlayerName)
	}
	if err := lookupTodaysPlayers(ctx, config, players, stats); err != nil {
		return fmt.Errorf("player lookups failed: %w", err)
	}

	// Step 5: A player outside the window must be a 404
	if err := checkOutsideWindowLookup(ctx, client, config, &daily, &all); err != nil {
		return fmt.Errorf("outside-window lookup check failed: %w", err)
	}

	// Step 6: Cross-check the stats endpoint
	var statsResp statsResponse
	if code, err := client.getJSON(ctx, config.BaseURL+"/api/stats", &statsResp); err != nil || code != StatusOK {
		return fmt.Errorf("fetching stats failed (status %d): %w", code, err)
	}
	if err := verifyStats(&statsResp, &all, &daily); err != nil {
		return fmt.Errorf("stats verification failed: %w", err)
	}

	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// checkOutsideWindowLookup picks a catalog player outside today's window and
// expects the player endpoint to reject the lookup.
func checkOutsideWindowLookup(ctx context.Context, client *HTTPClient, config *Config, daily *dailyResponse, all *allResponse) error {
	inWindow := make(map[string]bool, len(daily.Blogs))
	for _, b := range daily.Blogs {
		inWindow[b.PlayerName] = true
	}

	for _, b := range all.Blogs {
		if inWindow[b.PlayerName] {
			continue
		}
		code, err := client.getJSON(ctx, config.BaseURL+"/api/blogs/"+url.PathEscape(b.PlayerName), nil)
		if err != nil {
			return err
		}
		if code != StatusNotFound {
			return fmt.Errorf("player %q outside the window returned status %d, expected %d",
				b.PlayerName, code, StatusNotFound)
		}
		return nil
	}

	logger.Get().Info(ctx, "every catalog player is in today's window; skipping outside-window check")
	return nil
}

// saveCatalogToFile saves the generated catalog to a JSON file the service can
// load at startup.
func saveCatalogToFile(ctx context.Context, config *Config, blogs []Blog) error {
	if len(blogs) == 0 {
		return fmt.Errorf("no blogs to save")
	}

	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_blogs_" + timestamp + ".json"
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(catalogFile{Blogs: blogs}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(filename, data, filePermission); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	logger.Get().Info(ctx, "catalog saved to file",
		logger.String("filename", filename),
		logger.Int("blogs", len(blogs)))
	return nil
}

// displayFinalStats prints the final smoke test statistics.
func displayFinalStats(stats *Stats) {
	var successRate float64
	if stats.LookupsAttempted > 0 {
		successRate = float64(stats.LookupsSuccessful) / float64(stats.LookupsAttempted) * PercentageMultiplier
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("blogsGenerated", stats.BlogsGenerated),
		logger.Int("lookupsAttempted", stats.LookupsAttempted),
		logger.Int("lookupsSuccessful", stats.LookupsSuccessful),
		logger.Int("lookupsFailed", stats.LookupsFailed),
		logger.String("duration", stats.Duration.String()),
		logger.Any("successRate", successRate))
}

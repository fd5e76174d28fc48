package smoketest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// getJSON fetches rawURL and decodes the body into v, returning the status code.
func (c *HTTPClient) getJSON(ctx context.Context, rawURL string, v interface{}) (int, error) {
	resp, err := c.Get(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// lookupTodaysPlayers resolves every player from the daily window through the
// player endpoint using a worker pool.
func lookupTodaysPlayers(ctx context.Context, config *Config, players []string, stats *Stats) error {
	log.Printf("Looking up %d players with %d workers...", len(players), config.Workers)

	client := newHTTPClient(config.Timeout)

	var (
		attempted  int64
		successful int64
		failed     int64
	)

	nameChan := make(chan string, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for name := range nameChan {
				select {
				case <-ctx.Done():
					return
				default:
					atomic.AddInt64(&attempted, 1)
					if lookupSinglePlayer(ctx, client, config.BaseURL, name) {
						atomic.AddInt64(&successful, 1)
					} else {
						atomic.AddInt64(&failed, 1)
						log.Printf("lookup failed for %q", name)
					}
				}
			}
		}()
	}

	go func() {
		defer close(nameChan)
		for _, name := range players {
			select {
			case <-ctx.Done():
				return
			case nameChan <- name:
			}
		}
	}()

	wg.Wait()

	stats.LookupsAttempted = int(atomic.LoadInt64(&attempted))
	stats.LookupsSuccessful = int(atomic.LoadInt64(&successful))
	stats.LookupsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`Player lookups completed:
   Attempted: %d
   Successful: %d
   Failed: %d
`, stats.LookupsAttempted, stats.LookupsSuccessful, stats.LookupsFailed)

	if stats.LookupsFailed > 0 {
		return fmt.Errorf("%d of %d player lookups failed", stats.LookupsFailed, stats.LookupsAttempted)
	}
	return nil
}

// lookupSinglePlayer fetches one player from today's window and checks the echo.
func lookupSinglePlayer(ctx context.Context, client *HTTPClient, baseURL, name string) bool {
	var blog Blog
	code, err := client.getJSON(ctx, baseURL+"/api/blogs/"+url.PathEscape(name), &blog)
	if err != nil || code != StatusOK {
		return false
	}
	return blog.PlayerName == name
}

// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	repository "github.com/okian/rotoblogs/internal/adapters/repository"
	"github.com/okian/rotoblogs/internal/domain/blog"
	"github.com/okian/rotoblogs/internal/domain/rotation"
	"github.com/okian/rotoblogs/pkg/logger"
	"github.com/okian/rotoblogs/pkg/metrics"
)

// Service answers catalog and rotation queries for the HTTP API. The catalog
// is loaded once in Start and immutable afterwards, so every query method is
// a pure read.
type Service struct {
	mu sync.RWMutex

	// Core components
	store repository.Store

	// Configuration
	blogsPath string
	now       func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithBlogsPath sets the path of the JSON catalog file.
func WithBlogsPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.blogsPath = path
		}
	}
}

// WithStore injects a pre-built store, bypassing the file load in Start.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithClock sets the time source used for rotation math. Tests pin this to a
// fixed instant; production uses time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		blogsPath: "blogs.json",
		now:       time.Now,
		logger:    nil, // resolved in Start
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the catalog exactly once. A missing or malformed blogs file is
// not fatal: the service comes up with an empty catalog and every endpoint
// reports "no data loaded".
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		store, err := repository.Load(ctx, s.blogsPath)
		if err != nil {
			metrics.RecordCatalogLoadFailure()
			s.logger.Warn(ctx, "blogs file could not be loaded; serving empty catalog",
				logger.String("path", s.blogsPath),
				logger.Error(err),
			)
			store = repository.Empty()
		}
		s.store = store
	}

	s.started = true

	count := s.store.Count(ctx)
	s.logger.Info(ctx, "blog rotation service started",
		logger.Int("blogs", count),
		logger.Int("windowSize", rotation.WindowSize),
		logger.Int("cycleDays", rotation.CycleDays),
	)
	if names := blog.Names(s.store.Slice(ctx, 0, 3)); len(names) > 0 {
		s.logger.Debug(ctx, "sample players", logger.Any("names", names))
	}

	return nil
}

// Stop shuts down the service. There is nothing to release beyond the
// lifecycle flag; the catalog is plain memory.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "blog rotation service stopped")
}

// Today returns the current rotation day and the records in its window.
func (s *Service) Today(ctx context.Context) (rotation.Day, []blog.Record) {
	day := rotation.Window(s.now(), s.store.Count(ctx))
	return day, s.store.Slice(ctx, day.Start, day.End)
}

// All returns the full catalog in source-file order.
func (s *Service) All(ctx context.Context) []blog.Record {
	return s.store.All(ctx)
}

// Count returns the total number of records in the catalog.
func (s *Service) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}

// Lookup resolves a case-insensitive player name against today's window.
// Returns ErrNotShowingToday when the player exists in the catalog but is
// outside the window, and repository.ErrNotFound when the name is unknown
// entirely.
func (s *Service) Lookup(ctx context.Context, name string) (blog.Record, error) {
	_, todays := s.Today(ctx)
	want := strings.ToLower(name)
	for _, r := range todays {
		if strings.ToLower(r.PlayerName) == want {
			metrics.RecordLookup("today")
			return r, nil
		}
	}
	if _, err := s.store.ByName(ctx, name); err == nil {
		metrics.RecordLookup("not_today")
		return blog.Record{}, ErrNotShowingToday
	}
	metrics.RecordLookup("unknown")
	return blog.Record{}, repository.ErrNotFound
}

// Stats summarizes the full catalog and today's window.
func (s *Service) Stats(ctx context.Context) (all blog.Stats, today blog.Stats) {
	_, todays := s.Today(ctx)
	return blog.Summarize(s.store.All(ctx)), blog.Summarize(todays)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		day, todays := s.Today(ctx)
		total := s.store.Count(ctx)

		stats["totalBlogs"] = total
		stats["blogsToday"] = len(todays)
		stats["dayInCycle"] = day.DayInCycle()

		// Update metrics
		metrics.UpdateCatalogSize(total)
		metrics.UpdateDailyWindowSize(len(todays))
	}

	return stats
}

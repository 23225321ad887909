package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jcpao-csu/staff-directory-api/internal/directory"
	"github.com/jcpao-csu/staff-directory-api/internal/models"
	appErrors "github.com/jcpao-csu/staff-directory-api/pkg/errors"
)

const buildKey = "build"

// DirectorySource supplies the two raw views.
type DirectorySource interface {
	FetchEmployeeRows(ctx context.Context) ([]models.RawEmployeeRecord, error)
	FetchPetRows(ctx context.Context) ([]models.RawPetRecord, error)
}

// DirectoryServiceConfig tunes the directory service.
type DirectoryServiceConfig struct {
	CacheTTL     time.Duration
	BuildTimeout time.Duration
}

// DirectoryService owns the current directory. It is built lazily, shared by all
// readers, and replaced only by InvalidateAndRebuild.
type DirectoryService struct {
	source  DirectorySource
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	cfg     DirectoryServiceConfig
	now     func() time.Time

	mu      sync.RWMutex
	current *directory.Directory
	gen     uint64
	builds  singleflight.Group
}

func NewDirectoryService(source DirectorySource, cache *CacheService, metrics *MetricsService, cfg DirectoryServiceConfig, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BuildTimeout <= 0 {
		cfg.BuildTimeout = 30 * time.Second
	}
	return &DirectoryService{
		source:  source,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Current returns the built directory, building it on first use.
func (s *DirectoryService) Current(ctx context.Context) (*directory.Directory, error) {
	s.mu.RLock()
	dir := s.current
	s.mu.RUnlock()
	if dir != nil {
		return dir, nil
	}
	return s.build(ctx)
}

// BuildDirectory is idempotent: it returns the current directory or builds one.
func (s *DirectoryService) BuildDirectory(ctx context.Context) (models.DirectorySnapshot, error) {
	dir, err := s.Current(ctx)
	if err != nil {
		return models.DirectorySnapshot{}, err
	}
	return dir.Snapshot(), nil
}

// Filter applies spec to the current directory.
func (s *DirectoryService) Filter(ctx context.Context, spec models.FilterSpec) ([]models.DirectoryRow, error) {
	dir, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return dir.Filter(spec), nil
}

// Aggregate breaks the whole directory down by field.
func (s *DirectoryService) Aggregate(ctx context.Context, field models.AggregationField) (models.AggregationResult, error) {
	dir, err := s.Current(ctx)
	if err != nil {
		return models.AggregationResult{}, err
	}
	res, err := dir.Aggregate(field)
	if err != nil {
		return models.AggregationResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return res, nil
}

// Birthdays lists staff birthdays for month (1-12, or 0 for all months).
func (s *DirectoryService) Birthdays(ctx context.Context, month int) ([]models.BirthdayEntry, error) {
	if month < 0 || month > 12 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "month must be between 1 and 12")
	}
	dir, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return dir.Birthdays(month), nil
}

// Profile looks up an employee by work email.
func (s *DirectoryService) Profile(ctx context.Context, email string) (models.Profile, error) {
	dir, err := s.Current(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	profile, ok := dir.Profile(email)
	if !ok {
		return models.Profile{}, appErrors.Clone(appErrors.ErrNotFound, "no directory entry for "+email)
	}
	return profile, nil
}

// InvalidateAndRebuild drops the in-memory directory and the raw-fetch cache, then builds afresh.
func (s *DirectoryService) InvalidateAndRebuild(ctx context.Context) (models.DirectorySnapshot, error) {
	s.mu.Lock()
	s.current = nil
	s.gen++
	s.mu.Unlock()

	if err := s.cache.Invalidate(ctx, cachePatternAll); err != nil {
		s.logger.Warn("raw cache not cleared, rebuilding anyway", zap.Error(err))
	}
	// A build already in flight may have read stale cache entries.
	s.builds.Forget(buildKey)

	dir, err := s.build(ctx)
	if err != nil {
		return models.DirectorySnapshot{}, err
	}
	return dir.Snapshot(), nil
}

func (s *DirectoryService) build(ctx context.Context) (*directory.Directory, error) {
	if s.source == nil {
		return nil, appErrors.ErrSourceUnavailable
	}

	ch := s.builds.DoChan(buildKey, func() (interface{}, error) {
		// Detached so one cancelled caller does not fail everyone sharing the build.
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.BuildTimeout)
		defer cancel()
		return s.rebuild(buildCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*directory.Directory), nil
	}
}

func (s *DirectoryService) rebuild(ctx context.Context) (*directory.Directory, error) {
	start := time.Now()
	s.mu.RLock()
	gen := s.gen
	s.mu.RUnlock()

	var (
		employees []models.RawEmployeeRecord
		pets      []models.RawPetRecord
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		employees, err = loadSource(ctx, s, cacheKeyEmployees, string(models.SourceEmployee), s.source.FetchEmployeeRows)
		return err
	})
	g.Go(func() error {
		var err error
		pets, err = loadSource(ctx, s, cacheKeyPets, string(models.SourcePet), s.source.FetchPetRows)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrSourceUnavailable.Code, appErrors.ErrSourceUnavailable.Status, "directory build interrupted")
	}

	dir := directory.Build(employees, pets, s.now())
	snap := dir.Snapshot()

	s.mu.Lock()
	if s.gen == gen {
		s.current = dir
	}
	s.mu.Unlock()

	elapsed := time.Since(start)
	s.metrics.ObserveDirectoryBuild(elapsed, snap.EmployeeCount, snap.PetCount)
	s.logger.Info("directory built",
		zap.Int("employees", snap.EmployeeCount),
		zap.Int("pets", snap.PetCount),
		zap.Duration("duration", elapsed),
	)
	return dir, nil
}

// loadSource reads one view through the raw cache. A failed fetch degrades to an empty
// slice; only context cancellation is returned as an error.
func loadSource[T any](ctx context.Context, s *DirectoryService, key, source string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	if hit, _ := s.cache.Get(ctx, key, &cached); hit && cached != nil {
		return cached, nil
	}

	rows, err := fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fetch %s rows: %w", source, ctx.Err())
		}
		s.metrics.RecordSourceFailure(source)
		s.logger.Warn("source unavailable, continuing without it", zap.String("source", source), zap.Error(err))
		return []T{}, nil
	}
	if rows == nil {
		rows = []T{}
	}

	_ = s.cache.Set(ctx, key, rows, s.cfg.CacheTTL)
	return rows, nil
}

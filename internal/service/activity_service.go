package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
	"github.com/jcpao-csu/staff-directory-api/pkg/jobs"
)

const activityJobType = "activity"

type activityWriter interface {
	Insert(ctx context.Context, entry models.ActivityEntry) error
}

// ActivityConfig sizes the background writer.
type ActivityConfig struct {
	Workers    int
	BufferSize int
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// ActivityService records user actions without ever blocking or failing the caller.
// Each entry gets at most one retry before it is dropped.
type ActivityService struct {
	repo    activityWriter
	queue   *jobs.Queue
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

func NewActivityService(repo activityWriter, metrics *MetricsService, cfg ActivityConfig, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	// One best-effort retry at most, whatever the config says.
	retries := cfg.MaxRetries
	if retries > 1 {
		retries = 1
	}
	if retries < 0 {
		retries = 0
	}
	s := &ActivityService{repo: repo, metrics: metrics, logger: logger, now: time.Now}
	s.queue = jobs.NewQueue("activity", s.write, jobs.QueueConfig{
		Workers:    cfg.Workers,
		BufferSize: cfg.BufferSize,
		MaxRetries: retries,
		RetryDelay: cfg.RetryDelay,
		Timeout:    cfg.Timeout,
		Logger:     logger,
		OnDrop: func(job jobs.Job, err error) {
			metrics.RecordActivityDropped()
		},
	})
	return s
}

// Start launches the writer workers.
func (s *ActivityService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop stops the workers. Buffered entries that were not written are lost.
func (s *ActivityService) Stop() {
	s.queue.Stop()
}

// Log queues an activity entry. It never blocks and never reports failure.
func (s *ActivityService) Log(ctx context.Context, identifier string, kind models.ActivityKind) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		s.logger.Debug("activity without identifier ignored", zap.String("activity", string(kind)))
		return
	}
	parsed, ok := models.ParseActivityKind(string(kind))
	if !ok {
		s.logger.Debug("unknown activity ignored", zap.String("activity", string(kind)))
		return
	}

	job := jobs.Job{
		ID:      uuid.NewString(),
		Type:    activityJobType,
		Payload: models.ActivityEntry{WorkEmail: identifier, Activity: parsed, RecordedAt: s.now().UTC()},
	}
	if err := s.queue.TryEnqueue(job); err != nil {
		s.metrics.RecordActivityDropped()
		s.logger.Warn("activity dropped", zap.String("activity", string(parsed)), zap.Error(err))
	}
}

func (s *ActivityService) write(ctx context.Context, job jobs.Job) error {
	entry, ok := job.Payload.(models.ActivityEntry)
	if !ok {
		return nil
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return err
	}
	s.metrics.RecordActivityWritten()
	return nil
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jcpao-csu/staff-directory-api/internal/directory"
	"github.com/jcpao-csu/staff-directory-api/internal/models"
	appErrors "github.com/jcpao-csu/staff-directory-api/pkg/errors"
)

type directoryProvider interface {
	Current(ctx context.Context) (*directory.Directory, error)
}

// DashboardService computes staff analytics. Breakdowns and service stats cover staff
// only; pets are reported as a separate count.
type DashboardService struct {
	directory directoryProvider
	logger    *zap.Logger
	now       func() time.Time
}

func NewDashboardService(dir directoryProvider, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{directory: dir, logger: logger, now: time.Now}
}

// Dashboard assembles the summary, every breakdown and service statistics.
func (s *DashboardService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	dir, err := s.directory.Current(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	staff := dir.Staff()

	breakdowns := make([]models.AggregationResult, 0, len(models.AggregationFields))
	for _, field := range models.AggregationFields {
		res, err := directory.Aggregate(staff, field)
		if err != nil {
			return models.Dashboard{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "aggregate "+string(field))
		}
		breakdowns = append(breakdowns, res)
	}

	return models.Dashboard{
		Summary:     directory.Summary(dir.Rows()),
		Breakdowns:  breakdowns,
		Service:     directory.Summarize(staff),
		GeneratedAt: s.now().UTC(),
	}, nil
}

// Breakdown returns one staff breakdown.
func (s *DashboardService) Breakdown(ctx context.Context, field models.AggregationField) (models.AggregationResult, error) {
	if _, ok := models.ParseAggregationField(string(field)); !ok {
		return models.AggregationResult{}, appErrors.Clone(appErrors.ErrValidation, "unknown breakdown "+string(field))
	}
	dir, err := s.directory.Current(ctx)
	if err != nil {
		return models.AggregationResult{}, err
	}
	return directory.Aggregate(dir.Staff(), field)
}

// ServiceStats returns tenure statistics for staff.
func (s *DashboardService) ServiceStats(ctx context.Context) (models.ServiceStats, error) {
	dir, err := s.directory.Current(ctx)
	if err != nil {
		return models.ServiceStats{}, err
	}
	return directory.Summarize(dir.Staff()), nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

// ActivityRepository appends to the user activity log.
type ActivityRepository struct {
	db     *sqlx.DB
	insert string
}

func NewActivityRepository(db *sqlx.DB, table string) *ActivityRepository {
	return &ActivityRepository{
		db:     db,
		insert: fmt.Sprintf("INSERT INTO %s (work_email, activity) VALUES ($1, $2)", QuoteQualified(table)),
	}
}

// Insert writes one activity row. The timestamp is left to the table default.
func (r *ActivityRepository) Insert(ctx context.Context, entry models.ActivityEntry) error {
	if _, err := r.db.ExecContext(ctx, r.insert, entry.WorkEmail, string(entry.Activity)); err != nil {
		return fmt.Errorf("insert activity %s: %w", entry.Activity, err)
	}
	return nil
}

// Package repositories provides PostgreSQL-backed storage for assessment
// history.
package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PolicyLens/pkg/errors"
)

// Querier abstracts the pgx pool so repositories can be tested without a
// live database.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// AssessmentRecord is one stored assessment.  Payload carries the full
// assessment document as JSON; the other columns exist so history can be
// listed and filtered without deserializing every row.
type AssessmentRecord struct {
	ID        string
	URL       string
	Score     int
	RiskLevel string
	Language  string
	Payload   []byte
	CreatedAt time.Time
}

// AssessmentRepository stores and retrieves assessment records.
type AssessmentRepository interface {
	Save(ctx context.Context, record *AssessmentRecord) error
	GetByID(ctx context.Context, id string) (*AssessmentRecord, error)
	GetLatestByURL(ctx context.Context, url string) (*AssessmentRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*AssessmentRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type assessmentRepo struct {
	db     Querier
	logger logging.Logger
}

// NewAssessmentRepository builds a repository over the given query executor.
func NewAssessmentRepository(db Querier, logger logging.Logger) AssessmentRepository {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &assessmentRepo{
		db:     db,
		logger: logger.Named("assessment_repo"),
	}
}

const assessmentColumns = `id, url, score, risk_level, language, payload, created_at`

func (r *assessmentRepo) Save(ctx context.Context, record *AssessmentRecord) error {
	const q = `
		INSERT INTO assessments (id, url, score, risk_level, language, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		record.ID, record.URL, record.Score, record.RiskLevel,
		record.Language, record.Payload, record.CreatedAt)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to save assessment")
	}

	r.logger.Debug("assessment saved",
		logging.String("id", record.ID),
		logging.String("url", record.URL),
		logging.Int("score", record.Score))
	return nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*AssessmentRecord, error) {
	const q = `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = $1`

	record, err := scanAssessment(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New(errors.ErrCodeAssessmentNotFound, "assessment not found").WithDetail(id)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load assessment")
	}
	return record, nil
}

func (r *assessmentRepo) GetLatestByURL(ctx context.Context, url string) (*AssessmentRecord, error) {
	const q = `SELECT ` + assessmentColumns + `
		FROM assessments WHERE url = $1
		ORDER BY created_at DESC LIMIT 1`

	record, err := scanAssessment(r.db.QueryRow(ctx, q, url))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New(errors.ErrCodeAssessmentNotFound, "no assessment for url").WithDetail(url)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load assessment")
	}
	return record, nil
}

func (r *assessmentRepo) ListRecent(ctx context.Context, limit int) ([]*AssessmentRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	const q = `SELECT ` + assessmentColumns + `
		FROM assessments ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list assessments")
	}
	defer rows.Close()

	records := make([]*AssessmentRecord, 0, limit)
	for rows.Next() {
		record, err := scanAssessment(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan assessment row")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "assessment row iteration failed")
	}
	return records, nil
}

func (r *assessmentRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM assessments WHERE created_at < $1`

	tag, err := r.db.Exec(ctx, q, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to prune assessments")
	}
	return tag.RowsAffected(), nil
}

func scanAssessment(row pgx.Row) (*AssessmentRecord, error) {
	var record AssessmentRecord
	err := row.Scan(
		&record.ID, &record.URL, &record.Score, &record.RiskLevel,
		&record.Language, &record.Payload, &record.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

//Personal.AI order the ending

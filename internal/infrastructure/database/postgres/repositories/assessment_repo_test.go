//go:build integration

// Integration tests for the assessment repository.  They need a reachable
// PostgreSQL instance; set POLICYLENS_TEST_DATABASE_URL and run with
// -tags integration.
package repositories_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/PolicyLens/internal/infrastructure/database/postgres/repositories"
	apperrors "github.com/turtacn/PolicyLens/pkg/errors"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("POLICYLENS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("POLICYLENS_TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ddl := `
	CREATE TABLE IF NOT EXISTS assessments (
		id          UUID PRIMARY KEY,
		url         TEXT NOT NULL DEFAULT '',
		score       INTEGER NOT NULL,
		risk_level  TEXT NOT NULL,
		language    TEXT NOT NULL DEFAULT 'en',
		payload     JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	_, err = pool.Exec(context.Background(), ddl)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `TRUNCATE assessments`)
	})
	return pool
}

func newRecord(url string, score int, createdAt time.Time) *repositories.AssessmentRecord {
	return &repositories.AssessmentRecord{
		ID:        uuid.NewString(),
		URL:       url,
		Score:     score,
		RiskLevel: "MEDIUM",
		Language:  "en",
		Payload:   []byte(`{"id":"x"}`),
		CreatedAt: createdAt,
	}
}

func TestAssessmentRepository_SaveAndGet(t *testing.T) {
	pool := testPool(t)
	repo := repositories.NewAssessmentRepository(pool, nil)
	ctx := context.Background()

	record := newRecord("https://example.com/privacy", 42, time.Now().UTC())
	require.NoError(t, repo.Save(ctx, record))

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.URL, got.URL)
	assert.Equal(t, record.Score, got.Score)
	assert.JSONEq(t, string(record.Payload), string(got.Payload))
}

func TestAssessmentRepository_GetByID_NotFound(t *testing.T) {
	pool := testPool(t)
	repo := repositories.NewAssessmentRepository(pool, nil)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAssessmentNotFound))
}

func TestAssessmentRepository_GetLatestByURL(t *testing.T) {
	pool := testPool(t)
	repo := repositories.NewAssessmentRepository(pool, nil)
	ctx := context.Background()

	url := "https://example.com/tos"
	older := newRecord(url, 30, time.Now().UTC().Add(-time.Hour))
	newer := newRecord(url, 60, time.Now().UTC())
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	got, err := repo.GetLatestByURL(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
}

func TestAssessmentRepository_ListRecentAndDelete(t *testing.T) {
	pool := testPool(t)
	repo := repositories.NewAssessmentRepository(pool, nil)
	ctx := context.Background()

	old := newRecord("https://a.example", 20, time.Now().UTC().Add(-48*time.Hour))
	fresh := newRecord("https://b.example", 80, time.Now().UTC())
	require.NoError(t, repo.Save(ctx, old))
	require.NoError(t, repo.Save(ctx, fresh))

	records, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(records), 2)
	assert.Equal(t, fresh.ID, records[0].ID)

	deleted, err := repo.DeleteOlderThan(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}

//Personal.AI order the ending

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"land-collector/models"
	"land-collector/utils"
)

const complexColumns = 12

// PostgresWriter persists collection runs and their complexes to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, retrying the initial
// ping with retry, runs schema migrations and returns a ready writer.
func NewPostgresWriter(ctx context.Context, dsn string, retry *utils.RetryConfig) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	err = retry.Do(ctx, "postgres-ping", func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate(ctx context.Context) error {
	_, err := pw.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS collection_runs (
			run_id          UUID         PRIMARY KEY,
			region          TEXT         NOT NULL,
			collected_at    TIMESTAMPTZ  NOT NULL,
			fetched_count   INTEGER      NOT NULL DEFAULT 0,
			kept_count      INTEGER      NOT NULL DEFAULT 0,
			statistics      JSONB,
			created_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS complexes (
			id                 SERIAL PRIMARY KEY,
			run_id             UUID    NOT NULL REFERENCES collection_runs(run_id) ON DELETE CASCADE,
			complex_no         TEXT    NOT NULL DEFAULT '',
			name               TEXT    NOT NULL,
			latitude           DOUBLE PRECISION,
			longitude          DOUBLE PRECISION,
			real_estate_type   TEXT    NOT NULL DEFAULT '',
			completion_ym      TEXT    NOT NULL DEFAULT '',
			households         BIGINT,
			dong_count         BIGINT,
			median_deal_price  BIGINT,
			median_lease_price BIGINT,
			raw                JSONB   NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_runs_region        ON collection_runs(region);
		CREATE INDEX IF NOT EXISTS idx_complexes_run      ON complexes(run_id);
		CREATE INDEX IF NOT EXISTS idx_complexes_no       ON complexes(complex_no);
		CREATE INDEX IF NOT EXISTS idx_complexes_deal     ON complexes(median_deal_price);
	`)
	return err
}

// Store writes one run and all of its kept complexes in a transaction.
func (pw *PostgresWriter) Store(ctx context.Context, result *models.CollectionResult) error {
	stats, err := json.Marshal(result.Statistics)
	if err != nil {
		return fmt.Errorf("postgres: encode statistics: %w", err)
	}

	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO collection_runs (run_id, region, collected_at, fetched_count, kept_count, statistics)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, result.RunID.String(), result.Region, result.CollectionTime,
		result.FetchedCount, len(result.Complexes), string(stats))
	if err != nil {
		return fmt.Errorf("postgres: insert run: %w", err)
	}

	const batchSize = 50
	for i := 0; i < len(result.Complexes); i += batchSize {
		end := i + batchSize
		if end > len(result.Complexes) {
			end = len(result.Complexes)
		}
		if err := insertBatch(ctx, tx, result.RunID.String(), result.Complexes[i:end]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, runID string, batch []models.Complex) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*complexColumns)

	for idx, c := range batch {
		raw, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("postgres: encode complex %q: %w", c.Name, err)
		}

		base := idx * complexColumns
		placeholders := make([]string, complexColumns)
		for k := range placeholders {
			placeholders[k] = fmt.Sprintf("$%d", base+k+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			runID, c.ComplexNo, c.Name, nullFloat(c.Latitude), nullFloat(c.Longitude),
			c.RealEstateTypeName, c.CompletionYearMonth, nullInt(c.TotalHouseholdCount),
			nullInt(c.MedianDealPrice), nullInt(c.MedianLeasePrice), string(raw), nullInt(c.TotalDongCount))
	}

	query := fmt.Sprintf(`
		INSERT INTO complexes (run_id, complex_no, name, latitude, longitude, real_estate_type,
			completion_ym, households, median_deal_price, median_lease_price, raw, dong_count)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	if _, err := tx.ExecContext(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert complexes: %w", err)
	}
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

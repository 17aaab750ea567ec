package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Dosada05/tournament-league/models"
	"github.com/Dosada05/tournament-league/storage"
)

var ErrSnapshotNotWritten = errors.New("snapshot row was not written")

// currentSnapshotID is the primary key of the single live row.
const currentSnapshotID = 1

// SnapshotRepository persists the tournament snapshot in PostgreSQL. It satisfies
// storage.SnapshotStore.
type SnapshotRepository interface {
	storage.SnapshotStore
	UpdatedAt(ctx context.Context) (time.Time, error)
}

type postgresSnapshotRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostgresSnapshotRepository(db *sql.DB) SnapshotRepository {
	return &postgresSnapshotRepository{db: db, now: time.Now}
}

func (r *postgresSnapshotRepository) Load(ctx context.Context) (models.Snapshot, error) {
	query := `SELECT payload FROM tournament_snapshots WHERE id = $1`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, currentSnapshotID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, storage.ErrSnapshotNotFound
		}
		return models.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return storage.Decode(payload)
}

func (r *postgresSnapshotRepository) Save(ctx context.Context, s models.Snapshot) error {
	now := r.now()
	payload, err := storage.Encode(s, now)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := r.upsert(ctx, tx, payload, now); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (r *postgresSnapshotRepository) upsert(ctx context.Context, exec SQLExecutor, payload []byte, at time.Time) error {
	query := `
		INSERT INTO tournament_snapshots (id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

	result, err := exec.ExecContext(ctx, query, currentSnapshotID, payload, at)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("failed to save snapshot (%s %s): %w", pqErr.Code, pqErr.Code.Name(), err)
		}
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return checkAffectedRows(result, ErrSnapshotNotWritten)
}

func (r *postgresSnapshotRepository) UpdatedAt(ctx context.Context) (time.Time, error) {
	query := `SELECT updated_at FROM tournament_snapshots WHERE id = $1`

	var at time.Time
	err := r.db.QueryRowContext(ctx, query, currentSnapshotID).Scan(&at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, storage.ErrSnapshotNotFound
		}
		return time.Time{}, err
	}
	return at, nil
}

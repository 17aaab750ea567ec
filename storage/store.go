package storage

import (
	"context"
	"errors"

	"github.com/Dosada05/tournament-league/models"
)

// ErrSnapshotNotFound is returned by Load when nothing has been saved yet.
var ErrSnapshotNotFound = errors.New("no saved snapshot")

// SnapshotStore persists the single tournament snapshot. Implementations can back this
// with a local file, PostgreSQL, object storage or memory.
type SnapshotStore interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, s models.Snapshot) error
}

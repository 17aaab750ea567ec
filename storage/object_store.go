package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-league/models"
)

const (
	SnapshotObjectKey = "snapshots/current.json"
	archivePrefix     = "exports/"
	jsonContentType   = "application/json"
)

// ObjectStore keeps the snapshot as one object in a bucket and can archive exports next to it.
type ObjectStore struct {
	uploader FileUploader
	key      string
}

func NewObjectStore(uploader FileUploader, key string) *ObjectStore {
	if key == "" {
		key = SnapshotObjectKey
	}
	return &ObjectStore{uploader: uploader, key: key}
}

func (o *ObjectStore) Load(ctx context.Context) (models.Snapshot, error) {
	data, err := o.uploader.Download(ctx, o.key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return models.Snapshot{}, ErrSnapshotNotFound
		}
		return models.Snapshot{}, err
	}
	return Decode(data)
}

func (o *ObjectStore) Save(ctx context.Context, s models.Snapshot) error {
	data, err := Encode(s, time.Now())
	if err != nil {
		return err
	}
	if _, err := o.uploader.Upload(ctx, o.key, jsonContentType, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save snapshot object: %w", err)
	}
	return nil
}

// Archive uploads an already encoded export under exports/<name>.
func Archive(ctx context.Context, uploader FileUploader, name string, data []byte) (*UploadResult, error) {
	return uploader.Upload(ctx, archivePrefix+name, jsonContentType, bytes.NewReader(data))
}

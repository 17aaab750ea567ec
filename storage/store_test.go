package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "snapshot.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	require.NoError(t, store.Save(ctx, sampleSnapshot()))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files left behind")
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformedSnapshot)
}

func TestNewFileStore_RequiresPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	s := sampleSnapshot()
	require.NoError(t, store.Save(ctx, s))
	s.Roster[0].DisplayName = "mutated after save"

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ace", got.Roster[0].DisplayName)
	assert.Equal(t, 1, store.Saves())
}

type fakeUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (f *fakeUploader) Upload(_ context.Context, key, _ string, reader io.Reader) (*UploadResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return &UploadResult{Key: key, Location: f.GetPublicURL(key)}, nil
}

func (f *fakeUploader) Download(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return bytes.Clone(data), nil
}

func (f *fakeUploader) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	return publicURL("https://files.example.com/league", key)
}

func TestObjectStore(t *testing.T) {
	ctx := context.Background()
	uploader := newFakeUploader()
	store := NewObjectStore(uploader, "")

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	require.NoError(t, store.Save(ctx, sampleSnapshot()))
	assert.Contains(t, uploader.objects, SnapshotObjectKey)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
}

func TestArchive(t *testing.T) {
	uploader := newFakeUploader()

	res, err := Archive(context.Background(), uploader, "tournament_2026-10-18.json", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "exports/tournament_2026-10-18.json", res.Key)
	assert.Equal(t, "https://files.example.com/league/exports/tournament_2026-10-18.json", res.Location)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "", publicURL("", "a.json"))
	assert.Equal(t, "", publicURL("https://cdn.example.com", ""))
	assert.Equal(t, "https://cdn.example.com/a.json", publicURL("https://cdn.example.com", "a.json"))
	assert.Equal(t, "https://cdn.example.com/x/a.json", publicURL("https://cdn.example.com/x/", "/a.json"))
}

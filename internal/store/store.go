package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/arroyodev/illumibot-waitlist/internal/models"
	apperrors "github.com/arroyodev/illumibot-waitlist/pkg/errors"
)

// FileStore owns the local append-only waitlist log: one file holding a
// JSON array of entries, rewritten in full on every append. The store is
// the only writer of that file.
//
// Append is a read-modify-write of the whole file. The sequence is guarded
// by a store-scoped mutex so concurrently interleaved requests cannot lose
// an entry, and the rewrite goes through a temp file plus rename so a
// reader never observes a partially written file.
type FileStore struct {
	path string

	mu sync.Mutex
}

// NewFileStore initializes the backing file to an empty sequence when it
// does not exist yet, creating parent directories as needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStoreError("unable to create waitlist data directory", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, apperrors.NewStoreError("unable to initialize waitlist store", err)
		}
	} else if err != nil {
		return nil, apperrors.NewStoreError("unable to stat waitlist store", err)
	}

	return &FileStore{path: path}, nil
}

// Path returns the location of the backing file.
func (fs *FileStore) Path() string {
	return fs.path
}

// Append persists one new entry after the current sequence. Failures are
// fatal for the calling request: a decode failure means the store is
// corrupt, a write failure means the entry was not persisted. Neither is
// retried and neither leaves a partial file behind.
func (fs *FileStore) Append(ctx context.Context, entry *models.WaitlistEntry) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStoreError("append canceled", err)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.readLocked()
	if err != nil {
		return err
	}

	entries = append(entries, *entry)

	return fs.writeLocked(entries)
}

// Entries returns the full current sequence. There is no public retrieval
// API; this exists for health checks and tests.
func (fs *FileStore) Entries(ctx context.Context) ([]models.WaitlistEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStoreError("read canceled", err)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.readLocked()
}

// Ping verifies the backing file is present and decodable.
func (fs *FileStore) Ping(ctx context.Context) error {
	_, err := fs.Entries(ctx)
	return err
}

func (fs *FileStore) readLocked() ([]models.WaitlistEntry, error) {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, apperrors.NewStoreError("unable to read waitlist store", err)
	}

	var entries []models.WaitlistEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, apperrors.NewStoreError("waitlist store is corrupt", err)
	}

	return entries, nil
}

func (fs *FileStore) writeLocked(entries []models.WaitlistEntry) error {
	encoded, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return apperrors.NewStoreError("unable to encode waitlist entries", err)
	}

	dir := filepath.Dir(fs.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(fs.path)+".tmp-*")
	if err != nil {
		return apperrors.NewStoreError("unable to write waitlist store", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewStoreError("unable to write waitlist store", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.NewStoreError("unable to write waitlist store", err)
	}

	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return apperrors.NewStoreError(fmt.Sprintf("unable to replace waitlist store at %s", fs.path), err)
	}

	return nil
}

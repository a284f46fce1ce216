// Package repository implements the local persistence backend: a key-value
// blob store holding the serialized resume snapshot.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"resume-builder/internal/model"
)

// SnapshotRepo is the store's persistence collaborator. Load returns
// (nil, nil) when no snapshot has been stored under the key yet.
type SnapshotRepo interface {
	Load(key string) (*model.Snapshot, error)
	Save(key string, snap *model.Snapshot) error
}

// FileRepo keeps one JSON blob per key under a directory. It is the
// client-local storage backend for a single-user session.
type FileRepo struct {
	dir string
}

func NewFileRepo(dir string) *FileRepo {
	return &FileRepo{dir: dir}
}

func (r *FileRepo) path(key string) string {
	return filepath.Join(r.dir, key+".json")
}

// Load reads and decodes the stored snapshot. A snapshot that fails schema
// validation is still decoded best-effort: missing fields take defaults via
// Normalize, and only undecodable JSON is an error.
func (r *FileRepo) Load(key string) (*model.Snapshot, error) {
	raw, err := os.ReadFile(r.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	if err := model.ValidateSnapshotBytes(raw); err != nil {
		log.Printf("repository: warning: stored snapshot does not match schema (loading best-effort): %v", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	snap.Normalize()
	return &snap, nil
}

// Save writes the snapshot atomically (temp file + rename) so a crashed
// write never leaves a truncated blob behind.
func (r *FileRepo) Save(key string, snap *model.Snapshot) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp, err := os.CreateTemp(r.dir, key+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, r.path(key))
}

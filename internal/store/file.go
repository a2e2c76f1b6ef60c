package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spec-kit/gift-exchange-service/internal/domain"
)

const defaultSnapshotName = "data.json"

// FileStore keeps the snapshot as a single JSON file on local disk.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore builds a file-backed store. When path names an existing
// directory, the snapshot lives inside it as data.json.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, defaultSnapshotName)
	}
	return &FileStore{path: path, logger: logger}
}

// Load reads the snapshot. A missing file is a fresh install, not an error;
// an unreadable or undecodable file is reported so startup fails loudly.
func (s *FileStore) Load(ctx context.Context) (domain.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.Snapshot{}, nil
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}
	return snapshot, nil
}

// Save writes the full snapshot, replacing any prior one. The write goes to a
// temp file first and is renamed into place so a crash mid-write never leaves
// a truncated snapshot.
func (s *FileStore) Save(ctx context.Context, snapshot domain.Snapshot) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Ping verifies the snapshot location is reachable. A not-yet-created
// directory is fine; Save creates it.
func (s *FileStore) Ping(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

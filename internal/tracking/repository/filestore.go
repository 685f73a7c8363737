// Package repository persists outreach records and project aggregates as one
// JSON file per record under a data directory.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sync"

	"outreach_backend/internal/tracking/domain"
)

// ErrNotFound is returned when no record or aggregate exists for a key.
var ErrNotFound = errors.New("not found")

const lockStripes = 64

// FileStore is a durable key-value store for tracking data. Every write goes
// through a temp-file rename so readers never observe a partial record, and
// read-modify-write sequences are serialized per key through striped locks.
type FileStore struct {
	outreachDir string
	projectsDir string
	locks       [lockStripes]sync.Mutex
}

// NewFileStore creates the data directories if needed.
func NewFileStore(dataDir string) (*FileStore, error) {
	s := &FileStore{
		outreachDir: filepath.Join(dataDir, "outreach"),
		projectsDir: filepath.Join(dataDir, "projects"),
	}

	for _, dir := range []string{s.outreachDir, s.projectsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir %s: %w", dir, err)
		}
	}

	return s, nil
}

// CreateRecord persists a brand new outreach record.
func (s *FileStore) CreateRecord(record *domain.OutreachRecord) error {
	unlock := s.lock("outreach:" + record.OutreachID)
	defer unlock()

	return writeJSON(s.recordPath(record.OutreachID), record)
}

// GetRecord loads one outreach record, returning ErrNotFound when absent.
func (s *FileStore) GetRecord(outreachID string) (*domain.OutreachRecord, error) {
	var record domain.OutreachRecord
	if err := readJSON(s.recordPath(outreachID), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateRecord applies mutate to the stored record and persists the result.
// The whole load-mutate-save sequence holds the record's lock, so concurrent
// updates to the same outreach id cannot lose writes.
func (s *FileStore) UpdateRecord(outreachID string, mutate func(*domain.OutreachRecord) error) error {
	unlock := s.lock("outreach:" + outreachID)
	defer unlock()

	var record domain.OutreachRecord
	if err := readJSON(s.recordPath(outreachID), &record); err != nil {
		return err
	}

	if err := mutate(&record); err != nil {
		return err
	}

	return writeJSON(s.recordPath(outreachID), &record)
}

// UpsertProject loads the project aggregate (creating an empty one when
// absent), applies mutate and persists the result under the project's lock.
func (s *FileStore) UpsertProject(projectID string, mutate func(*domain.ProjectTracking)) error {
	unlock := s.lock("project:" + projectID)
	defer unlock()

	var project domain.ProjectTracking
	err := readJSON(s.projectPath(projectID), &project)
	if errors.Is(err, ErrNotFound) {
		project = domain.ProjectTracking{ProjectID: projectID}
	} else if err != nil {
		return err
	}

	mutate(&project)

	return writeJSON(s.projectPath(projectID), &project)
}

// GetProject loads one project aggregate, returning ErrNotFound when absent.
func (s *FileStore) GetProject(projectID string) (*domain.ProjectTracking, error) {
	var project domain.ProjectTracking
	if err := readJSON(s.projectPath(projectID), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *FileStore) recordPath(outreachID string) string {
	return filepath.Join(s.outreachDir, sanitizeFilename(outreachID)+".json")
}

func (s *FileStore) projectPath(projectID string) string {
	return filepath.Join(s.projectsDir, "project_"+sanitizeFilename(projectID)+".json")
}

func (s *FileStore) lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	mu := &s.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// sanitizeFilename keeps ids from escaping the data directory.
func sanitizeFilename(id string) string {
	out := make([]rune, 0, len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", path, err)
	}

	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

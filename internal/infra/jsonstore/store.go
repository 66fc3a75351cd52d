// Package jsonstore provides JSON file-based implementations of the
// issue store and the repository registry.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// fileMap is an in-memory id -> record map mirrored to a single JSON file.
// The file holds a JSON object keyed by id. Every mutation rewrites the
// whole file while holding both the in-process mutex and an exclusive
// flock on <path>.lock, so the CLI and a running server never interleave
// their read-modify-write cycles.
type fileMap[T any] struct {
	modTime  time.Time // of the file content held in records
	records  map[string]*T
	logger   *zap.Logger
	path     string
	lockPath string
	size     int64
	mu       sync.RWMutex
}

// openFileMap loads path into memory. A missing or unreadable file
// yields an empty map; the problem is logged, not returned.
func openFileMap[T any](path string, logger *zap.Logger) *fileMap[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &fileMap[T]{
		path:     path,
		lockPath: path + ".lock",
		logger:   logger,
	}

	m.mu.Lock()
	m.records = m.load(make(map[string]*T))
	m.mu.Unlock()
	return m
}

// load reads the file, falling back to current when it is missing or
// corrupt. Callers must hold m.mu for writing.
func (m *fileMap[T]) load(current map[string]*T) map[string]*T {
	info, err := os.Stat(m.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn("store file not accessible", zap.String("path", m.path), zap.Error(err))
		}
		return current
	}

	// Remember what was seen even if it is corrupt, so refresh does not
	// retry the same content on every call.
	m.modTime, m.size = info.ModTime(), info.Size()

	records, err := m.read()
	if err != nil {
		m.logger.Warn("store file unreadable, keeping in-memory records",
			zap.String("path", m.path), zap.Int("records", len(current)), zap.Error(err))
		return current
	}
	return records
}

// refresh reloads the file when another process has replaced it.
func (m *fileMap[T]) refresh() {
	info, err := os.Stat(m.path)
	if err != nil {
		return
	}

	m.mu.RLock()
	stale := !info.ModTime().Equal(m.modTime) || info.Size() != m.size
	m.mu.RUnlock()
	if !stale {
		return
	}

	m.mu.Lock()
	m.records = m.load(m.records)
	m.mu.Unlock()
}

func (m *fileMap[T]) get(id string) (*T, bool) {
	m.refresh()

	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[id]
	return r, ok
}

// each calls fn for every record while holding the read lock.
func (m *fileMap[T]) each(fn func(id string, r *T)) {
	m.refresh()

	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, r := range m.records {
		fn(id, r)
	}
}

func (m *fileMap[T]) put(id string, r *T) error {
	return m.mutate(func(records map[string]*T) bool {
		records[id] = r
		return true
	})
}

// remove deletes id and reports whether it existed. The file is only
// rewritten when something was removed.
func (m *fileMap[T]) remove(id string) (bool, error) {
	var existed bool
	err := m.mutate(func(records map[string]*T) bool {
		if _, existed = records[id]; existed {
			delete(records, id)
		}
		return existed
	})
	return existed, err
}

// mutate applies fn to a copy of the records and persists the copy when
// fn reports a change. Memory is only updated after the write succeeded.
func (m *fileMap[T]) mutate(fn func(map[string]*T) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, err := m.acquireLock()
	if err != nil {
		return err
	}
	defer m.releaseLock(lock)

	// Start from the file so writes made by other processes survive.
	base := m.load(m.records)
	next := make(map[string]*T, len(base)+1)
	for k, v := range base {
		next[k] = v
	}
	if !fn(next) {
		m.records = base
		return nil
	}
	if err := m.write(next); err != nil {
		return err
	}
	m.records = next
	if info, err := os.Stat(m.path); err == nil {
		m.modTime, m.size = info.ModTime(), info.Size()
	}
	return nil
}

func (m *fileMap[T]) acquireLock() (*os.File, error) {
	dir := filepath.Dir(m.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(m.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), syscall.LOCK_EX); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (m *fileMap[T]) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (m *fileMap[T]) read() (map[string]*T, error) {
	content, err := os.ReadFile(m.path)
	if err != nil {
		return nil, err
	}

	var records map[string]*T
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	if records == nil {
		records = make(map[string]*T)
	}
	for id, r := range records {
		if r == nil {
			delete(records, id)
		}
	}
	return records, nil
}

func (m *fileMap[T]) write(records map[string]*T) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := m.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, m.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

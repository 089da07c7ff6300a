package dialog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/imoya/tuidialog/logging"
)

const (
	// maxBackupGenerations is the number of rolling backups to keep.
	maxBackupGenerations = 3

	// savesPerSecond caps how often throttled saves hit the disk. Hosts
	// that save on every Update would otherwise rewrite the file on each
	// keystroke while a dialog is open.
	savesPerSecond = 2
)

// storeData is the on-disk envelope around the snapshots.
type storeData struct {
	Dialogs   []*Snapshot `json:"dialogs"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// StateStore persists open-dialog snapshots to a JSON file so a host can
// reopen its dialogs after a process restart. Writes are atomic
// (temp file, fsync, rename) with rolling backups, and Load falls back
// to the newest readable backup when the main file is corrupted.
//
// Thread-safe; Save may be called from a background goroutine.
type StateStore struct {
	path    string
	mu      sync.Mutex
	limiter *rate.Limiter
	log     *slog.Logger
}

// NewStateStore creates a store writing to path. The parent directory is
// created on demand.
func NewStateStore(path string) *StateStore {
	return &StateStore{
		path:    path,
		limiter: rate.NewLimiter(rate.Limit(savesPerSecond), 1),
		log:     logging.ForComponent(logging.CompStore),
	}
}

// Path returns the store's file path.
func (s *StateStore) Path() string { return s.path }

// Save persists the snapshots, throttled by the store's rate limit.
// Throttled calls return nil without writing; the caller is expected to
// call SaveNow on shutdown to flush the final state.
func (s *StateStore) Save(snaps []*Snapshot) error {
	if !s.limiter.Allow() {
		return nil
	}
	return s.SaveNow(snaps)
}

// SaveNow persists the snapshots immediately, bypassing the rate limit.
func (s *StateStore) SaveNow(snaps []*Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := storeData{Dialogs: snaps, UpdatedAt: time.Now()}
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dialog state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	// Atomic write: temp file, fsync, rotate backups, rename.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, jsonData, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := syncFile(tmpPath); err != nil {
		s.log.Warn("fsync failed", "path", tmpPath, "error", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		s.rotateBackups()
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("finalize save: %w", err)
	}
	return nil
}

// Clear removes the persisted state. Call it after a clean shutdown with
// no dialogs open, so a later start does not resurrect stale dialogs.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear dialog state: %w", err)
	}
	return nil
}

// Load reads the persisted snapshots. A missing file is not an error and
// returns nil snapshots. A corrupted main file falls back to the newest
// readable backup.
func (s *StateStore) Load() ([]*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := s.loadFromFile(s.path)
	if err != nil {
		s.log.Warn("state file corrupted, attempting backup recovery", "error", err)
		data, err = s.recoverFromBackups()
		if err != nil {
			return nil, fmt.Errorf("load dialog state: %w", err)
		}
	}
	return data.Dialogs, nil
}

func (s *StateStore) loadFromFile(path string) (*storeData, error) {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var data storeData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return &data, nil
}

// recoverFromBackups tries .bak, .bak.1, ... in order and returns the
// first one that parses.
func (s *StateStore) recoverFromBackups() (*storeData, error) {
	bakPath := s.path + ".bak"
	backupPaths := []string{bakPath}
	for i := 1; i < maxBackupGenerations; i++ {
		backupPaths = append(backupPaths, fmt.Sprintf("%s.%d", bakPath, i))
	}

	for _, tryPath := range backupPaths {
		if _, err := os.Stat(tryPath); os.IsNotExist(err) {
			continue
		}
		data, err := s.loadFromFile(tryPath)
		if err != nil {
			s.log.Warn("backup also corrupted", "path", tryPath, "error", err)
			continue
		}
		s.log.Info("recovered dialog state from backup", "path", tryPath)
		return data, nil
	}
	return nil, fmt.Errorf("all backups corrupted or missing")
}

// rotateBackups shifts .bak.1 -> .bak.2, .bak -> .bak.1 and copies the
// current file to .bak.
func (s *StateStore) rotateBackups() {
	bakPath := s.path + ".bak"
	for i := maxBackupGenerations - 1; i > 0; i-- {
		oldPath := fmt.Sprintf("%s.%d", bakPath, i-1)
		if i == 1 {
			oldPath = bakPath
		}
		newPath := fmt.Sprintf("%s.%d", bakPath, i)
		if i == maxBackupGenerations-1 {
			os.Remove(newPath)
		}
		if _, err := os.Stat(oldPath); err == nil {
			if err := os.Rename(oldPath, newPath); err != nil {
				s.log.Warn("backup rotation failed", "from", oldPath, "to", newPath, "error", err)
			}
		}
	}
	if err := copyFile(s.path, bakPath); err != nil {
		s.log.Warn("backup copy failed", "path", bakPath, "error", err)
	}
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0600)
}

func syncFile(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

package settings

import (
	"errors"
	"fmt"
	"sync"

	"github.com/iiroan/otpdeck/internal/config"
)

// Store persists appearance snapshots.
type Store interface {
	Load() (AppSettings, error)
	Save(AppSettings) error
}

// ErrStoreUnavailable is returned by a MemoryStore told to fail writes.
var ErrStoreUnavailable = errors.New("settings store unavailable")

// MemoryStore keeps the snapshot in process memory.
type MemoryStore struct {
	mu        sync.Mutex
	value     AppSettings
	saves     int
	failSaves bool
}

// NewMemoryStore returns a store holding initial.
func NewMemoryStore(initial AppSettings) *MemoryStore {
	return &MemoryStore{value: initial}
}

func (s *MemoryStore) Load() (AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

func (s *MemoryStore) Save(v AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSaves {
		return ErrStoreUnavailable
	}
	s.value = v
	s.saves++
	return nil
}

// FailSaves makes subsequent saves fail with ErrStoreUnavailable.
func (s *MemoryStore) FailSaves(fail bool) {
	s.mu.Lock()
	s.failSaves = fail
	s.mu.Unlock()
}

// Saves reports how many saves succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// FileStore keeps the snapshot in the appearance section of the config file.
// Other sections are preserved on save.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the config file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the config file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := config.Load(s.path)
	if err != nil {
		return Defaults(), err
	}
	return FromConfig(cfg.Appearance)
}

func (s *FileStore) Save(v AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := config.Load(s.path)
	if err != nil {
		return err
	}
	cfg.Appearance = ToConfig(v)
	if err := cfg.Save(s.path); err != nil {
		return fmt.Errorf("saving appearance: %w", err)
	}
	return nil
}

// FromConfig converts the persisted appearance section into a snapshot.
func FromConfig(c config.AppearanceConfig) (AppSettings, error) {
	theme, err := ParseTheme(c.Theme)
	if err != nil {
		return Defaults(), fmt.Errorf("appearance.theme: %w", err)
	}
	style, err := ParseListStyle(c.ListStyle)
	if err != nil {
		return Defaults(), fmt.Errorf("appearance.list_style: %w", err)
	}
	return AppSettings{
		SelectedTheme:    theme,
		ListStyle:        style,
		ShowNextCode:     c.ShowNextCode,
		AutoFocusSearch:  c.AutoFocusSearch,
		ShowBackupNotice: c.ShowBackupNotice,
	}, nil
}

// ToConfig converts a snapshot into its persisted form.
func ToConfig(s AppSettings) config.AppearanceConfig {
	return config.AppearanceConfig{
		Theme:            s.SelectedTheme.String(),
		ListStyle:        s.ListStyle.String(),
		ShowNextCode:     s.ShowNextCode,
		AutoFocusSearch:  s.AutoFocusSearch,
		ShowBackupNotice: s.ShowBackupNotice,
	}
}

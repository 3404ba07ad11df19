package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"keymint/internal/domain"
)

const configsFile = "configs.json" // map[string]domain.CoreConfig

// FileStore keeps core configuration records in a JSON file under dir.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore returns a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path() string { return filepath.Join(s.dir, configsFile) }

func (s *FileStore) load() (map[string]domain.CoreConfig, error) {
	m := make(map[string]domain.CoreConfig)
	if err := readJSON(s.path(), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *FileStore) save(m map[string]domain.CoreConfig) error {
	return writeJSON(s.path(), m)
}

// CreateConfig stores a new record. A missing ID gets a fresh UUID; a
// supplied ID that is already taken fails with ErrConfigExists.
func (s *FileStore) CreateConfig(c domain.CoreConfig) (domain.CoreConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return domain.CoreConfig{}, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	} else if _, taken := m[c.ID]; taken {
		return domain.CoreConfig{}, fmt.Errorf("%w: %s", domain.ErrConfigExists, c.ID)
	}
	now := time.Now().Unix()
	c.CreatedUTC = now
	c.UpdatedUTC = now
	m[c.ID] = c
	if err := s.save(m); err != nil {
		return domain.CoreConfig{}, err
	}
	return c, nil
}

// GetConfig returns the record with the given ID.
func (s *FileStore) GetConfig(id string) (domain.CoreConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return domain.CoreConfig{}, err
	}
	c, ok := m[id]
	if !ok {
		return domain.CoreConfig{}, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, id)
	}
	return c, nil
}

// ListConfigs returns all records sorted by name, then ID.
func (s *FileStore) ListConfigs() ([]domain.CoreConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.CoreConfig, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// UpdateConfig replaces an existing record, preserving its creation time.
func (s *FileStore) UpdateConfig(c domain.CoreConfig) (domain.CoreConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return domain.CoreConfig{}, err
	}
	prev, ok := m[c.ID]
	if !ok {
		return domain.CoreConfig{}, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, c.ID)
	}
	c.CreatedUTC = prev.CreatedUTC
	c.UpdatedUTC = time.Now().Unix()
	m[c.ID] = c
	if err := s.save(m); err != nil {
		return domain.CoreConfig{}, err
	}
	return c, nil
}

// DeleteConfig removes the record with the given ID.
func (s *FileStore) DeleteConfig(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := m[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrConfigNotFound, id)
	}
	delete(m, id)
	return s.save(m)
}

// Compile-time assertion that FileStore implements domain.ConfigStore.
var _ domain.ConfigStore = (*FileStore)(nil)

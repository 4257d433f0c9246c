package store

import (
	"sync"

	"github.com/ayoisaiah/quave/internal/models"
)

// Memory is an in-process store for the timer record and preferences.
type Memory struct {
	rec   *models.TimerRecord
	prefs map[string]string
	// SaveErr, when set, is returned by Save without modifying the record
	SaveErr error
	mu      sync.Mutex
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		prefs: make(map[string]string),
	}
}

func (m *Memory) Load() (*models.TimerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rec == nil {
		return nil, nil
	}

	rec := *m.rec

	return &rec, nil
}

func (m *Memory) Save(rec *models.TimerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}

	cp := *rec
	m.rec = &cp

	return nil
}

func (m *Memory) Delete() error {
	m.mu.Lock()
	m.rec = nil
	m.mu.Unlock()

	return nil
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.prefs[key], nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	m.prefs[key] = value
	m.mu.Unlock()

	return nil
}

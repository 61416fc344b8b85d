package storage

import (
	"fmt"
	"sync"
	"time"
)

// Memory keeps the high score in process memory. It is used when no
// database is wanted and in tests.
type Memory struct {
	mu    sync.Mutex
	entry *HighScoreEntry
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// HighScore returns the stored high score, if any.
func (m *Memory) HighScore() (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entry == nil {
		return 0, false, nil
	}
	return m.entry.Score, true, nil
}

// HighScoreEntry returns a copy of the stored record, or nil.
func (m *Memory) HighScoreEntry() (*HighScoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entry == nil {
		return nil, nil
	}
	e := *m.entry
	return &e, nil
}

// SaveHighScore keeps the higher of score and the stored value.
func (m *Memory) SaveHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative score %d", score)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entry != nil && m.entry.Score >= score {
		return nil
	}
	m.entry = &HighScoreEntry{Score: score, UpdatedAt: time.Now()}
	return nil
}

// Reset forgets the stored high score.
func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entry = nil
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

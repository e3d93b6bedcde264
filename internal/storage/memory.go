package storage

import (
	"strconv"
	"sync"
	"time"
)

// Memory is an in-process store with the same contract as Store.
// It backs tests and stands in when the database cannot be opened.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemory creates an empty memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

// Get returns the entry for key.
func (m *Memory) Get(key string) (Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	return e, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(key, value)
	return nil
}

func (m *Memory) set(key, value string) {
	m.entries[key] = Entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// BestScore returns the stored best score, 0 when absent or unparsable.
func (m *Memory) BestScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return parseScore(m.entries[BestScoreKey].Value), nil
}

// SaveBestScore stores score if it is greater than the stored best.
func (m *Memory) SaveBestScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > parseScore(m.entries[BestScoreKey].Value) {
		m.set(BestScoreKey, strconv.Itoa(score))
	}
	return nil
}

// ClearBestScore forgets the best score.
func (m *Memory) ClearBestScore() error {
	return m.Delete(BestScoreKey)
}

// Close does nothing.
func (m *Memory) Close() error { return nil }

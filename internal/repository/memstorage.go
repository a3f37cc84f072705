package repository

import (
	models "github.com/Schera-ole/loganalyzer/internal/model"
)

// MemStorage implements the Repository interface using in-memory storage.
//
// It is owned by a single aggregation pass and is not safe for concurrent use.
type MemStorage struct {
	// counters stores counts as key -> value pairs
	counters map[string]int64

	// order records keys in the order they were first seen
	order []string
}

// NewMemStorage creates a new in-memory storage instance.
func NewMemStorage() *MemStorage {

	return &MemStorage{
		counters: make(map[string]int64),
	}
}

// Increment adds one to the counter stored under key.
func (ms *MemStorage) Increment(key string) {
	ms.Add(key, 1)
}

// Add adds delta to the counter stored under key, creating it if needed.
func (ms *MemStorage) Add(key string, delta int64) {
	_, exists := ms.counters[key]
	if exists {
		ms.counters[key] += delta
	} else {
		ms.counters[key] = delta
		ms.order = append(ms.order, key)
	}
}

// Get returns the counter stored under key, or zero if the key was never seen.
func (ms *MemStorage) Get(key string) int64 {
	return ms.counters[key]
}

// Has reports whether key was ever added.
func (ms *MemStorage) Has(key string) bool {
	_, exists := ms.counters[key]
	return exists
}

// Len returns the number of distinct keys.
func (ms *MemStorage) Len() int {
	return len(ms.order)
}

// List returns all counters in first-seen order.
func (ms *MemStorage) List() []models.Count {
	result := make([]models.Count, 0, len(ms.order))
	for _, key := range ms.order {
		result = append(result, models.Count{Key: key, Value: ms.counters[key]})
	}
	return result
}

// Reset drops every counter.
func (ms *MemStorage) Reset() {
	ms.counters = make(map[string]int64)
	ms.order = nil
}

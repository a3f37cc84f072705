package repository

import (
	models "github.com/Schera-ole/loganalyzer/internal/model"
)

// Repository is a mapping from a key to an integer count.
//
// Missing keys read as zero, so callers never need to initialise a key
// before incrementing it.
type Repository interface {
	Increment(key string)
	Add(key string, delta int64)
	Get(key string) int64
	Has(key string) bool
	Len() int
	List() []models.Count
	Reset()
}

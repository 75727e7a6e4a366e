package services

import (
	"errors"

	"github.com/cskyle2026/Diabetes/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KV is the string-keyed scratchpad the daily accumulator persists into.
type KV interface {
	// Get returns the stored value and whether the slot exists.
	Get(key string) (string, bool, error)
	// Set writes the slot unconditionally.
	Set(key, value string) error
}

// GormStore keeps slots in the local sqlite file.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

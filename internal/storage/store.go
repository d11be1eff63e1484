// Package storage persists named record collections as whole JSON arrays
// and broadcasts a store-wide change notification on every write.
package storage

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRow is the persisted form of one collection: the whole JSON
// array under its key, replaced atomically on every write.
type CollectionRow struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM table name.
func (CollectionRow) TableName() string { return "collections" }

// Store is the key-value persistence boundary. Each key is exclusively
// written by its owning service; readers only ever see whole-collection
// snapshots.
type Store struct {
	db *gorm.DB

	mu     sync.Mutex
	subs   map[int]chan struct{}
	nextID int
}

// New creates a Store backed by the given database.
func New(db *gorm.DB) *Store {
	return &Store{db: db, subs: make(map[int]chan struct{})}
}

// Save marshals records, fully replaces the array stored at key, and then
// notifies every subscriber. The notification carries no key: subscribers
// are expected to reload everything they care about.
func (s *Store) Save(key string, records interface{}) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	row := CollectionRow{Key: key, Data: data, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// LoadRaw returns the raw JSON array stored at key, or nil when the key
// has never been written.
func (s *Store) LoadRaw(key string) ([]byte, error) {
	var row CollectionRow
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Data, nil
}

// Subscribe registers a change listener and returns its channel together
// with a cancel function that removes the subscription. Notifications are
// coalescing: a subscriber that has not drained its channel sees at most
// one pending signal.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
	return ch, cancel
}

func (s *Store) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
			// subscriber already has a pending notification
		}
	}
}

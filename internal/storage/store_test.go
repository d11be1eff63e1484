package storage

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"balanco/internal/models"
)

// testutil depends on this package, so tests here open their own
// in-memory database.
var testDBCounter atomic.Int64

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	n := testDBCounter.Add(1)
	dsn := fmt.Sprintf("file:storagetest%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&CollectionRow{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return New(db), db
}

func TestSaveAndLoadRaw(t *testing.T) {
	store, _ := newTestStore(t)

	records := []models.Bill{
		{ID: "b1", Name: "Water", Company: "Sabesp", Amount: 80, DueDay: 5, IsActive: true},
	}
	if err := store.Save(KeyBills, records); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	raw, err := store.LoadRaw(KeyBills)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if raw == nil {
		t.Fatal("expected stored data, got nil")
	}
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	store, _ := newTestStore(t)

	first := []models.Bill{
		{ID: "b1", Name: "Water", Company: "Sabesp", Amount: 80, DueDay: 5, Category: "utilities", IsActive: true},
		{ID: "b2", Name: "Gas", Company: "Comgas", Amount: 60, DueDay: 12, Category: "utilities", IsActive: true},
	}
	if err := store.Save(KeyBills, first); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	second := []models.Bill{first[1]}
	if err := store.Save(KeyBills, second); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}

	got := Load[models.Bill](store, KeyBills)
	if len(got) != 1 || got[0].ID != "b2" {
		t.Errorf("expected the overwritten collection, got %+v", got)
	}
}

func TestLoadRawMissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	raw, err := store.LoadRaw(KeyLoans)
	if err != nil {
		t.Fatalf("expected no error for a never-written key, got %v", err)
	}
	if raw != nil {
		t.Errorf("expected nil for a never-written key, got %q", raw)
	}
}

func TestSubscribeReceivesNotification(t *testing.T) {
	store, _ := newTestStore(t)

	ch, cancel := store.Subscribe()
	defer cancel()

	if err := store.Save(KeyBills, []models.Bill{}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a notification after save")
	}
}

func TestNotificationsCoalesce(t *testing.T) {
	store, _ := newTestStore(t)

	ch, cancel := store.Subscribe()
	defer cancel()

	for i := 0; i < 5; i++ {
		if err := store.Save(KeyBills, []models.Bill{}); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
	}

	// an undrained subscriber holds at most one pending signal
	<-ch
	select {
	case <-ch:
		t.Error("expected notifications to coalesce into a single signal")
	default:
	}
}

func TestCancelStopsNotifications(t *testing.T) {
	store, _ := newTestStore(t)

	ch, cancel := store.Subscribe()
	cancel()

	if err := store.Save(KeyBills, []models.Bill{}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	select {
	case <-ch:
		t.Error("expected no notification after cancel")
	default:
	}
}

func TestSlowSubscriberDoesNotBlockSave(t *testing.T) {
	store, _ := newTestStore(t)

	_, cancel := store.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			if err := store.Save(KeyBills, []models.Bill{}); err != nil {
				t.Errorf("failed to save: %v", err)
				return
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("save blocked on a subscriber that never drains")
	}
}

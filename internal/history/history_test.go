package history

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"balanco/internal/metrics"
	"balanco/internal/testutil"
)

func setupHistoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.SetupTestDB(t)
	if err := db.AutoMigrate(&WealthSnapshot{}); err != nil {
		t.Fatalf("failed to migrate wealth_snapshots: %v", err)
	}
	return db
}

func TestRecordSnapshot(t *testing.T) {
	svc := NewService(setupHistoryDB(t))

	at := time.Date(2025, time.March, 15, 23, 59, 0, 0, time.UTC)
	m := metrics.Metrics{NetWorth: 8500, TotalAssets: 10500, TotalDebt: 2000, NetMonthlyIncome: 4600}

	snapshot, err := svc.Record(m, at)
	testutil.AssertNoError(t, err)

	if snapshot.Day != "2025-03-15" {
		t.Errorf("expected day 2025-03-15, got %q", snapshot.Day)
	}
	if snapshot.NetWorth != 8500 || snapshot.TotalAssets != 10500 {
		t.Errorf("unexpected snapshot: %+v", snapshot)
	}
}

func TestRecordUpsertsSameDay(t *testing.T) {
	svc := NewService(setupHistoryDB(t))

	morning := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.March, 15, 21, 0, 0, 0, time.UTC)

	_, err := svc.Record(metrics.Metrics{NetWorth: 8000}, morning)
	testutil.AssertNoError(t, err)

	updated, err := svc.Record(metrics.Metrics{NetWorth: 8500}, evening)
	testutil.AssertNoError(t, err)

	if updated.NetWorth != 8500 {
		t.Errorf("expected the later recording to win, got %v", updated.NetWorth)
	}

	all, err := svc.History(morning.AddDate(0, 0, -1), evening.AddDate(0, 0, 1))
	testutil.AssertNoError(t, err)
	if len(all) != 1 {
		t.Fatalf("expected one row per day, got %d", len(all))
	}
	if all[0].NetWorth != 8500 {
		t.Errorf("expected the stored row updated in place, got %v", all[0].NetWorth)
	}
}

func TestHistoryRangeAndOrder(t *testing.T) {
	svc := NewService(setupHistoryDB(t))

	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, worth := range []float64{100, 200, 300, 400} {
		_, err := svc.Record(metrics.Metrics{NetWorth: worth}, base.AddDate(0, 0, i))
		testutil.AssertNoError(t, err)
	}

	// [Mar 2, Mar 3] inclusive on both ends
	got, err := svc.History(base.AddDate(0, 0, 1), base.AddDate(0, 0, 2))
	testutil.AssertNoError(t, err)

	if len(got) != 2 {
		t.Fatalf("expected 2 snapshots in range, got %d", len(got))
	}
	if got[0].Day != "2025-03-02" || got[1].Day != "2025-03-03" {
		t.Errorf("expected snapshots ordered oldest first, got %+v", got)
	}
	if got[0].NetWorth != 200 || got[1].NetWorth != 300 {
		t.Errorf("unexpected values: %+v", got)
	}
}

func TestHistoryEmptyRange(t *testing.T) {
	svc := NewService(setupHistoryDB(t))

	got, err := svc.History(time.Now().AddDate(-1, 0, 0), time.Now())
	testutil.AssertNoError(t, err)
	if len(got) != 0 {
		t.Errorf("expected no snapshots, got %+v", got)
	}
}

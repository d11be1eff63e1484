package metrics

import (
	"sync"
	"time"

	"balanco/internal/logger"
	"balanco/internal/models"
	"balanco/internal/storage"
)

// Engine keeps a live metrics snapshot fresh as the underlying collections
// change. It subscribes to the store's change channel and, on every
// notification, reloads all collections unconditionally and recomputes from
// scratch. There is no per-key diffing: a write anywhere, including to keys
// the engine does not track, triggers a full reload of everything.
type Engine struct {
	store *storage.Store
	nowFn func() time.Time

	mu      sync.RWMutex
	current Metrics

	notify <-chan struct{}
	cancel func()
	done   chan struct{}
}

// NewEngine loads all collections, computes the initial snapshot, and
// starts the recompute loop. Close must be called on teardown so the store
// subscription does not leak.
func NewEngine(store *storage.Store) *Engine {
	return newEngine(store, time.Now)
}

// newEngine injects the clock for tests.
func newEngine(store *storage.Store, nowFn func() time.Time) *Engine {
	notify, cancel := store.Subscribe()
	e := &Engine{
		store:  store,
		nowFn:  nowFn,
		notify: notify,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	e.Recompute()
	go e.loop()
	return e
}

// Current returns the latest metrics snapshot.
func (e *Engine) Current() Metrics {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// Recompute reloads every collection from the store and replaces the
// current snapshot. The engine only ever reads; no key is written here.
func (e *Engine) Recompute() {
	c := Collections{
		Transactions: storage.Load[models.Transaction](e.store, storage.KeyTransactions),
		Income:       storage.Load[models.IncomeSource](e.store, storage.KeyIncome),
		Investments:  storage.Load[models.Investment](e.store, storage.KeyInvestments),
		RealEstate:   storage.Load[models.RealEstateHolding](e.store, storage.KeyRealEstate),
		Retirement:   storage.Load[models.RetirementPlan](e.store, storage.KeyRetirement),
		Loans:        storage.Load[models.LoanOrDebt](e.store, storage.KeyLoans),
		Bills:        storage.Load[models.Bill](e.store, storage.KeyBills),
	}

	m := Compute(c, e.nowFn())

	e.mu.Lock()
	e.current = m
	e.mu.Unlock()
}

// Close cancels the store subscription and stops the recompute loop.
func (e *Engine) Close() {
	e.cancel()
	close(e.done)
}

func (e *Engine) loop() {
	for {
		select {
		case <-e.done:
			return
		case <-e.notify:
			e.Recompute()
			logger.Get().Debugw("metrics recomputed", "netWorth", e.Current().NetWorth)
		}
	}
}

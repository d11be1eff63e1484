package storage

import (
	"encoding/json"

	"balanco/internal/logger"
	"balanco/internal/models"
	"balanco/internal/validator"
)

// Collection keys. Each key holds an independent JSON array; no record
// references another collection.
const (
	KeyTransactions = "transactions"
	KeyIncome       = "income"
	KeyInvestments  = "investments"
	KeyRealEstate   = "realEstate"
	KeyRetirement   = "retirement"
	KeyLoans        = "loans"
	KeyBills        = "bills"
)

// Load decodes the collection stored at key element by element. A record
// that fails to decode or validate is dropped with a logged warning so a
// single bad record cannot poison an aggregate total; a missing or corrupt
// row degrades to an empty collection, never an error.
func Load[T models.Record](s *Store, key string) []T {
	raw, err := s.LoadRaw(key)
	if err != nil {
		logger.Get().Warnw("failed to read collection, using empty",
			"key", key, "error", err)
		return []T{}
	}
	if raw == nil {
		return []T{}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		logger.Get().Warnw("corrupt collection, using empty",
			"key", key, "error", err)
		return []T{}
	}

	out := make([]T, 0, len(elems))
	for i, e := range elems {
		var rec T
		if err := json.Unmarshal(e, &rec); err != nil {
			logger.Get().Warnw("dropping malformed record",
				"key", key, "index", i, "error", err)
			continue
		}
		if err := validator.Struct(rec); err != nil {
			logger.Get().Warnw("dropping invalid record",
				"key", key, "index", i, "id", rec.RecordID(), "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out
}

package services

import (
	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/storage"
)

// appendRecord appends rec to the collection at key and saves the whole
// array back. Records are never written individually; the collection is
// always replaced as a unit.
func appendRecord[T models.Record](store *storage.Store, key string, rec T) error {
	records := storage.Load[T](store, key)
	records = append(records, rec)
	if err := store.Save(key, records); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// replaceRecord swaps the record matching updated's ID in place and saves
// the collection. Returns notFound when no record carries that ID.
func replaceRecord[T models.Record](store *storage.Store, key string, updated T, notFound *apperrors.AppError) error {
	records := storage.Load[T](store, key)
	for i := range records {
		if records[i].RecordID() == updated.RecordID() {
			records[i] = updated
			if err := store.Save(key, records); err != nil {
				return apperrors.Wrap(apperrors.ErrStorage, err)
			}
			return nil
		}
	}
	return notFound
}

// removeRecord deletes the record with id by filtering it out of the
// collection. Returns notFound when no record carries that ID.
func removeRecord[T models.Record](store *storage.Store, key, id string, notFound *apperrors.AppError) error {
	records := storage.Load[T](store, key)
	kept := make([]T, 0, len(records))
	for _, rec := range records {
		if rec.RecordID() != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return notFound
	}
	if err := store.Save(key, kept); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

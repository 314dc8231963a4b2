package mysql

import (
	"errors"

	"flat-allocation/internal/domain/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wrap turns gorm's not-found into errs.ErrNotFound and everything else into
// a StorageError carrying the driver error.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	return errs.Storage(op, err)
}

// forUpdate adds SELECT ... FOR UPDATE. SQLite has no row locks; its writer
// lock already serializes the tx.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

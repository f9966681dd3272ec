package database

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// TxOptions are the options of every mutating transaction. REPEATABLE READ keeps a
// concurrent deposit or expense write from computing its fund delta against a stale
// balance; the loser of a conflict fails and is not retried here.
var TxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead}

// WithTransaction runs fn inside one REPEATABLE READ transaction. The transaction is
// committed when fn returns nil and rolled back when it returns an error or panics.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn, TxOptions)
}

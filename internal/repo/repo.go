package repo

import (
	"context"

	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

// Tx runs fn against a transaction-scoped repo. Commit on nil return,
// rollback on error or panic.
func (r *GormRepo) Tx(ctx context.Context, fn func(tx *GormRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(txDB *gorm.DB) error {
		return fn(&GormRepo{DB: txDB})
	})
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"gorm.io/gorm"
)

// conn picks the transaction when one is supplied
func conn(ctx context.Context, db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// translate maps gorm errors onto repository errors so services stay driver agnostic
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, repositories.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, repositories.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

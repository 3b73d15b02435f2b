package repositories

import (
	"errors"

	"gorm.io/gorm"

	"eventPlanner/internal/errs"
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	return err
}

// deleteResult reports ErrNotFound when nothing matched.
func deleteResult(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

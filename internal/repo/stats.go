// Package repo implements the data persistence layer for the contacts
// table, backed by GORM. This file provides a small aggregate query used
// primarily for conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/contactbook/go-contacts-backend/internal/domain"
)

// ContactsStats returns aggregate metadata for the contacts table: the total
// number of rows and the maximum CreatedAt timestamp among them. Since
// contacts are never updated in place, (count, newest CreatedAt) changes on
// every create or delete and is a sound cache validator for the list view.
//
// Return values:
//   - count:        total contacts
//   - maxCreatedAt: pointer to the greatest CreatedAt, or nil if no rows
//   - err:          database error, if any
func ContactsStats(ctx context.Context, db *gorm.DB) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Contact{})

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}

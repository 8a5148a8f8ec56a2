// Package repo implements the data persistence layer for the contacts
// table, backed by GORM. This file provides the repository functions for
// the Contact model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - Inserting a row whose email collides with an existing one surfaces
//     the raw driver error; the service layer translates it into a domain
//     error via duplicate detection.
//   - DeleteContact never fails on a missing row. It reports rows affected
//     so callers may distinguish "deleted" from "was already absent", but
//     the API deliberately does not.
//   - On other DB errors (connectivity, missing table, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contactbook/go-contacts-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. It aliases
// gorm.ErrRecordNotFound for convenience and consistency across layers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateContact inserts a new contact row. The ID is a randomly generated
// UUID (string) and CreatedAt is set to UTC. Inputs are stored verbatim;
// trimming and phone normalization happen in the service layer before this
// call.
//
// On success, it returns the persisted Contact. On failure (including a
// unique-email violation), it returns the raw DB error.
func CreateContact(ctx context.Context, db *gorm.DB, name, email, phone string) (*domain.Contact, error) {
	c := &domain.Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// CountContacts returns the total number of rows in the contacts table.
func CountContacts(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Contact{}).
		Count(&total).Error
	return total, err
}

// ListContactsPage returns a slice of contacts ordered by creation time
// descending (newest first). Use CountContacts to obtain the total for
// pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*limit).
func ListContactsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Contact, error) {
	var out []domain.Contact
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetContact fetches a single contact by ID. If the record does not exist,
// it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetContact(ctx context.Context, db *gorm.DB, id string) (*domain.Contact, error) {
	var c domain.Contact
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteContact removes the contact with the given ID and returns the number
// of rows affected. Deleting a missing ID is not an error: zero rows is a
// valid outcome (idempotent delete).
func DeleteContact(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Contact{})
	return res.RowsAffected, res.Error
}

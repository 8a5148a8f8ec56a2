// Package services – ContactService
//
// This file implements the ContactService, which owns the business rules of
// the contact book: fail-fast field validation before any persistence call,
// normalization (trimmed name/email, digits-only phone), pagination
// arithmetic, duplicate-email translation, and idempotent deletes. Service-
// level errors (e.g. ErrDuplicateEmail, ErrNotConfigured) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/contactbook/go-contacts-backend/internal/domain"
	"github.com/contactbook/go-contacts-backend/internal/validate"
)

// ContactRepo defines the repository contract required by ContactService.
// Implementations are responsible for persistence of contact rows.
type ContactRepo interface {
	// CreateContact inserts a new contact row with pre-normalized fields.
	CreateContact(ctx context.Context, db *gorm.DB, name, email, phone string) (*domain.Contact, error)

	// CountContacts returns the total number of contacts for pagination.
	CountContacts(ctx context.Context, db *gorm.DB) (int64, error)

	// ListContactsPage returns a window of contacts, newest first.
	ListContactsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Contact, error)

	// DeleteContact removes a contact by ID, reporting rows affected.
	DeleteContact(ctx context.Context, db *gorm.DB, id string) (int64, error)
}

// ContactService provides the create, list, and delete operations over the
// contact collection. A nil DB is a supported state: every operation then
// reports ErrNotConfigured, mirroring a deployment whose datastore
// credentials were never supplied.
type ContactService struct {
	// DB is the GORM handle used for persistence. May be nil when the
	// datastore is not configured.
	DB *gorm.DB
	// Repo is the contact repository used by this service.
	Repo ContactRepo
}

// NewContactService constructs a ContactService over the given handle and
// repository.
func NewContactService(db *gorm.DB, r ContactRepo) *ContactService {
	return &ContactService{DB: db, Repo: r}
}

// Create validates and normalizes the three fields, then inserts a new
// contact.
//
// Validation happens before any persistence call (no partial writes):
//   - all three fields must be non-blank, otherwise ErrMissingFields
//   - email must match the shared shape rule, otherwise ErrInvalidEmail
//   - phone must normalize to 10 digits, otherwise ErrInvalidPhone
//
// Normalization: name and email are trimmed, phone is reduced to digits.
// A uniqueness violation on email is translated to ErrDuplicateEmail; other
// DB errors propagate raw.
func (s *ContactService) Create(ctx context.Context, name, email, phone string) (*domain.Contact, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(phone) == "" {
		return nil, ErrMissingFields
	}
	if !validate.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !validate.IsValidPhone(phone) {
		return nil, ErrInvalidPhone
	}
	if s.DB == nil {
		return nil, ErrNotConfigured
	}

	c, err := s.Repo.CreateContact(ctx, s.DB,
		strings.TrimSpace(name),
		strings.TrimSpace(email),
		validate.NormalizePhone(phone),
	)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return c, nil
}

// ListPage returns a page of contacts (newest first) and the total count.
// It applies defaults for invalid page/limit. When the table is empty the
// page query is skipped entirely.
func (s *ContactService) ListPage(ctx context.Context, page, limit int) ([]domain.Contact, int64, error) {
	if s.DB == nil {
		return nil, 0, ErrNotConfigured
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	total, err := s.Repo.CountContacts(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Contact{}, 0, nil
	}

	items, err := s.Repo.ListContactsPage(ctx, s.DB, offset, limit)
	return items, total, err
}

// Delete removes the contact with the given ID. Deleting an ID that does not
// exist succeeds: the operation is idempotent, and no existence check is
// performed.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if s.DB == nil {
		return ErrNotConfigured
	}
	_, err := s.Repo.DeleteContact(ctx, s.DB, id)
	return err
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}

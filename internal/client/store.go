package client

import (
	"context"
	"sync"

	"github.com/contactbook/go-contacts-backend/internal/domain"
	"github.com/contactbook/go-contacts-backend/internal/validate"
)

// Store keeps a client-side view of the contact list the way a UI data hook
// would: one page of contacts, pagination metadata, a loading flag, and the
// last user-facing error.
//
// Mutations are optimistic. A successful add prepends the created record and
// bumps the total without re-fetching; a successful delete removes the row
// and decrements the total. A failed fetch clears the list so stale rows are
// never shown as current.
//
// Store is safe for concurrent use. Overlapping fetches are last-write-wins;
// there is no retry or request dedup.
type Store struct {
	api *Client

	mu         sync.Mutex
	contacts   []domain.Contact
	pagination Pagination
	loading    bool
	errMsg     string
}

// NewStore returns an empty Store backed by api.
func NewStore(api *Client) *Store {
	return &Store{api: api}
}

// Contacts returns a copy of the current contact page.
func (s *Store) Contacts() []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Pagination returns the pagination metadata from the last successful fetch.
func (s *Store) Pagination() Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last error message, or "" when the last operation
// succeeded.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError dismisses the current error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// FetchContacts loads one page from the server, replacing the local list and
// pagination wholesale. On failure the list is cleared and the server's
// message is kept for display. The loading flag is released on every path.
func (s *Store) FetchContacts(ctx context.Context, page, limit int) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	res, err := s.api.ListContacts(ctx, page, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.contacts = nil
		s.errMsg = err.Error()
		return
	}
	s.contacts = res.Contacts
	s.pagination = res.Pagination
}

// AddContact creates a contact and, on success, prepends it to the local
// list and increments the total. On failure the list is untouched and the
// server's message is kept. Reports whether the create succeeded.
func (s *Store) AddContact(ctx context.Context, form validate.FormFields) bool {
	created, err := s.api.CreateContact(ctx, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = err.Error()
		return false
	}
	s.errMsg = ""
	s.contacts = append([]domain.Contact{*created}, s.contacts...)
	s.pagination.Total++
	return true
}

// DeleteContact removes a contact and, on success, drops it from the local
// list and decrements the total. Reports whether the delete succeeded.
func (s *Store) DeleteContact(ctx context.Context, id string) bool {
	err := s.api.DeleteContact(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = err.Error()
		return false
	}
	s.errMsg = ""
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			break
		}
	}
	if s.pagination.Total > 0 {
		s.pagination.Total--
	}
	return true
}

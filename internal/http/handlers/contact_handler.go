// Contact HTTP handlers.
//
// This file exposes the REST endpoints for contact resources:
//   - GET    /contacts       (list, paginated, ETag support)
//   - POST   /contacts       (create)
//   - DELETE /contacts/{id}  (delete, idempotent)
//   - GET    /health         (liveness probe)
//
// Handlers are transport-thin: they validate input, call the contact
// service, and translate results into HTTP responses. The wire shapes and
// user-facing messages follow the reference contract exactly.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/contactbook/go-contacts-backend/internal/domain"
	"github.com/contactbook/go-contacts-backend/internal/repo"
	"github.com/contactbook/go-contacts-backend/internal/services"
	"github.com/contactbook/go-contacts-backend/internal/utils"
)

//
// Service contract (context-aware)
//

// ContactService defines the contact lifecycle operations consumed by the
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ContactService interface {
	// Create validates, normalizes, and inserts a new contact.
	Create(ctx context.Context, name, email, phone string) (*domain.Contact, error)
	// ListPage returns a page of contacts (newest first) and the total count.
	ListPage(ctx context.Context, page, limit int) ([]domain.Contact, int64, error)
	// Delete removes a contact by ID; deleting a missing ID succeeds.
	Delete(ctx context.Context, id string) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for contacts. It depends on the
// abstract service interface to keep transport concerns separate from
// business logic.
type Handlers struct {
	contactSvc ContactService
}

// New constructs a Handlers instance bound to the given service.
func New(contactSvc ContactService) *Handlers {
	return &Handlers{contactSvc: contactSvc}
}

//
// DTOs
//

// CreateContactRequest is the JSON payload for creating a contact.
type CreateContactRequest struct {
	Name  string `json:"name"  example:"Jane Doe"`
	Email string `json:"email" example:"jane@x.com"`
	Phone string `json:"phone" example:"555-123-4567"`
}

// Pagination carries pagination metadata for list responses. Field names
// match the reference wire contract (camelCase totalPages).
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListContactsResponse wraps a page of contacts and pagination information.
type ListContactsResponse struct {
	Contacts   []domain.Contact `json:"contacts"`
	Pagination Pagination       `json:"pagination"`
}

// MessageResponse is the acknowledgment body for delete operations.
type MessageResponse struct {
	Message string `json:"message" example:"Contact deleted successfully"`
}

// HealthResponse is the static liveness payload.
type HealthResponse struct {
	Status  string `json:"status"  example:"OK"`
	Message string `json:"message" example:"Contact Book API is running"`
}

//
// Helpers
//

// clampPagination parses and bounds the page and limit query params to sane
// defaults and limits, returning (page, limit).
func clampPagination(c *gin.Context) (page, limit int) {
	const (
		defaultPage  = 1
		defaultLimit = 10
		maxLimit     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	limit = utils.AtoiDefault(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return
}

//
// Handlers
//

// ListContacts godoc
// @ID          listContacts
// @Summary     List contacts (paginated)
// @Description Returns a page of contacts ordered by creation time descending. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Contacts
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"      minimum(1) default(1)
// @Param       limit          query   int     false "Items per page"   minimum(1) maximum(100) default(10)
//
// @Success     200  {object} handlers.ListContactsResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Datastore unavailable or query failed"
// @Router      /contacts [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit := clampPagination(c)

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, ok := h.contactSvc.(*services.ContactService); ok {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.ContactsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"contacts:%d:%d:%d:%d"`, count, ts, page, limit)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.contactSvc.ListPage(ctx, page, limit)
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			fail(c, http.StatusInternalServerError, ErrCodeNotConfigured, "Database not configured")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "Failed to fetch contacts")
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	resp := ListContactsResponse{
		Contacts: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
	ok(c, http.StatusOK, resp)
}

// CreateContact godoc
// @ID          createContact
// @Summary     Add a new contact
// @Description Validates the three fields, normalizes them, and inserts the contact. Email must be unique.
// @Tags        Contacts
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateContactRequest  true  "Contact payload"
//
// @Success     201  {object} domain.Contact
// @Failure     400  {object} handlers.ErrorResponse "Missing or malformed field, or duplicate email"
// @Failure     500  {object} handlers.ErrorResponse "Datastore unavailable or insert failed"
// @Router      /contacts [post]
func (h *Handlers) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Name, email, and phone are required")
		return
	}

	created, err := h.contactSvc.Create(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Name, email, and phone are required")
		case errors.Is(err, services.ErrInvalidEmail):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Invalid email format")
		case errors.Is(err, services.ErrInvalidPhone):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Phone number must be exactly 10 digits")
		case errors.Is(err, services.ErrDuplicateEmail):
			fail(c, http.StatusBadRequest, ErrCodeConflict, "Email already exists")
		case errors.Is(err, services.ErrNotConfigured):
			fail(c, http.StatusInternalServerError, ErrCodeNotConfigured, "Database not configured")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "Failed to add contact")
		}
		return
	}

	ok(c, http.StatusCreated, created)
}

// DeleteContact godoc
// @ID          deleteContact
// @Summary     Remove a contact
// @Description Deletes the contact with the given ID. Deleting an ID that does not exist still succeeds (idempotent delete; no existence check).
// @Tags        Contacts
// @Produce     json
//
// @Param       id  path  string  true  "Contact ID (UUID)"  format(uuid) example(141add05-4415-4938-b5a1-17e0d3171aff)
//
// @Success     200  {object} handlers.MessageResponse
// @Failure     500  {object} handlers.ErrorResponse "Datastore unavailable or delete failed"
// @Router      /contacts/{id} [delete]
func (h *Handlers) DeleteContact(c *gin.Context) {
	id := c.Param("id")

	if err := h.contactSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			fail(c, http.StatusInternalServerError, ErrCodeNotConfigured, "Database not configured")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "Failed to delete contact")
		return
	}

	ok(c, http.StatusOK, MessageResponse{Message: "Contact deleted successfully"})
}

// Health godoc
// @ID          health
// @Summary     Liveness probe
// @Description Static OK payload; performs no dependency checks.
// @Tags        Health
// @Produce     json
//
// @Success     200  {object} handlers.HealthResponse
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ok(c, http.StatusOK, HealthResponse{Status: "OK", Message: "Contact Book API is running"})
}

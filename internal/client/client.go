// Package client provides a small Go consumer for the contact book REST API
// together with a state container that mirrors how a frontend data hook
// manages the contact list: optimistic inserts and removals, a loading flag,
// and a single user-facing error string.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/contactbook/go-contacts-backend/internal/domain"
	"github.com/contactbook/go-contacts-backend/internal/validate"
)

// defaultTimeout bounds every request when the caller supplies no custom
// http.Client.
const defaultTimeout = 10 * time.Second

// Pagination mirrors the pagination block of the list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListResult is the decoded body of GET /contacts.
type ListResult struct {
	Contacts   []domain.Contact `json:"contacts"`
	Pagination Pagination       `json:"pagination"`
}

// apiError is the server's error envelope. Only the human-readable message
// is surfaced to callers.
type apiError struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Error     string `json:"error"`
}

// Client talks to a contact book server over HTTP.
//
// The zero value is not usable; construct with New. All methods honor the
// provided context for cancellation and timeouts.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New returns a Client for the API rooted at baseURL (e.g.
// "http://localhost:8080"). When hc is nil a client with a 10s timeout is
// used.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

// ListContacts fetches one page of contacts, newest first.
func (c *Client) ListContacts(ctx context.Context, page, limit int) (*ListResult, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/contacts?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, decodeError(res)
	}
	var out ListResult
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateContact submits the form fields as entered; the server trims and
// normalizes them.
func (c *Client) CreateContact(ctx context.Context, form validate.FormFields) (*domain.Contact, error) {
	payload, err := json.Marshal(map[string]string{
		"name":  form.Name,
		"email": form.Email,
		"phone": form.Phone,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contacts", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return nil, decodeError(res)
	}
	var out domain.Contact
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContact removes a contact by id. Deleting an unknown id succeeds.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/contacts/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return decodeError(res)
	}
	return nil
}

// decodeError extracts the server's error message from a non-2xx response,
// falling back to a generic status line when the body is not the expected
// envelope.
func decodeError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	var ae apiError
	if err := json.Unmarshal(body, &ae); err == nil && ae.Error != "" {
		return fmt.Errorf("%s", ae.Error)
	}
	return fmt.Errorf("unexpected status %d", res.StatusCode)
}

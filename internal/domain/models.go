// Package domain defines the persistence model for contacts. The type is
// mapped with GORM and forms the core data layer of the contact book
// application.
package domain

import "time"

// Contact represents a single entry in the contact book. Contacts are
// created and deleted but never updated in place; the table is the sole
// source of truth and clients hold only a transient page of it.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), assigned at insert time.
//   - Name: display name, stored trimmed of surrounding whitespace.
//   - Email: unique across the whole table; stored trimmed.
//   - Phone: normalized to exactly 10 decimal digits before storage.
//   - CreatedAt: insert timestamp (UTC); the sole sort key, newest first.
type Contact struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null;uniqueIndex:ux_contacts_email"`
	Phone     string    `json:"phone"      gorm:"type:char(10);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_contacts_created"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }

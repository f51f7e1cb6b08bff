// Package domain contains the core data types for the Dios property register.
// This package has zero internal dependencies and is imported by every other
// internal package (repo, listing, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address is a building. Street and Number together form the human-readable
// key and every export filename.
type Address struct {
	ID        uuid.UUID `json:"id" yaml:"id,omitempty"`
	Street    string    `json:"street" yaml:"street"`
	Number    string    `json:"number" yaml:"number"`
	ZipCode   string    `json:"zip_code,omitempty" yaml:"zip_code,omitempty"`
	Town      string    `json:"town,omitempty" yaml:"town,omitempty"`
	Country   string    `json:"country,omitempty" yaml:"country,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`

	// Flats keeps the register order. A nil entry is a hole: a slot with no
	// flat behind it. A nil slice means the flats were never loaded, which
	// is not the same thing as a building without flats.
	Flats []*Flat `json:"flats" yaml:"flats"`
}

// Key returns "{Street} {Number}", the base of every listing filename.
func (a *Address) Key() string {
	return a.Street + " " + a.Number
}

// Flat is a rentable unit within an address.
type Flat struct {
	ID            uuid.UUID    `json:"id" yaml:"id,omitempty"`
	Floor         int          `json:"floor" yaml:"floor"` // may be negative (basement)
	Number        string       `json:"number" yaml:"number"`
	EntryDoorCode string       `json:"entry_door_code,omitempty" yaml:"entry_door_code,omitempty"`
	Parameters    []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Parameter assigns a tenant to a flat. Visibility flags are stored with the
// assignment but only matter to the tenant-facing pages.
type Parameter struct {
	ID        uuid.UUID `json:"id" yaml:"id,omitempty"`
	UserID    string    `json:"user_id,omitempty" yaml:"user_id,omitempty"` // empty when the slot is vacant
	ShowEmail bool      `json:"show_email" yaml:"show_email,omitempty"`
	ShowPhone bool      `json:"show_phone" yaml:"show_phone,omitempty"`
}

// Tenant is a resident user. Only the names are used when listing a building.
type Tenant struct {
	ID        uuid.UUID `json:"id" yaml:"id,omitempty"`
	FirstName string    `json:"first_name" yaml:"first_name"`
	LastName  string    `json:"last_name" yaml:"last_name"`
	Email     string    `json:"email,omitempty" yaml:"email,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

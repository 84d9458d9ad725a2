// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status is the publication state of a registered restaurant.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Restaurant is the registration record for a restaurant or store.
// RestaurantID is the human-legible business identifier (e.g. KOCRES0000001);
// it is system-generated, globally unique and immutable after creation.
type Restaurant struct {
	ID            uuid.UUID // Surrogate primary key assigned by the store.
	RestaurantID  string    // Business identifier derived from city, category and an ordinal count.
	Name          string
	Category      string
	CuisineTypes  []string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Pincode       string
	City          string
	State         string
	Country       string
	Coordinates   string // Free-form "lat,lon" as submitted.
	Hours         string // 12-hour "HH:MM AM/PM" as submitted.
	Website       string
	SocialLinks   string
	Description   string
	LicenseNumber string
	GSTNumber     string
	Status        Status
	LogoURL       string // Public path of the stored logo, empty when none was uploaded.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

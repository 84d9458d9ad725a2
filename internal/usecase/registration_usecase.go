// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"resto/internal/domain/entity"
)

// --- Input DTOs ---

// LogoUpload carries an optional logo attachment. Open returns a fresh
// reader over the file content; the use case owns closing it.
type LogoUpload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// RegisterRestaurantInput defines the data required to register a restaurant.
// All fields are raw form values; validation happens inside the use case.
type RegisterRestaurantInput struct {
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
	Coordinates   string
	Hours         string
	Website       string
	SocialLinks   string
	Description   string
	LicenseNumber string
	GSTNumber     string
	Status        string
	Logo          *LogoUpload
}

// --- Output DTOs ---

// RegisterRestaurantOutput returns the persisted record, including the
// generated business identifier and the stored logo path.
type RegisterRestaurantOutput struct {
	Restaurant *entity.Restaurant
}

// RegistrationUsecase defines the interface for the registration workflow.
// This is the contract the delivery layer depends on.
type RegistrationUsecase interface {
	RegisterRestaurant(ctx context.Context, input *RegisterRestaurantInput) (*RegisterRestaurantOutput, error)
}

// Package repository defines the persistence contracts the domain depends on.
package repository

import (
	"context"

	"resto/internal/domain/entity"
	"resto/internal/errors"
)

// ErrRestaurantNotFound is returned when no record matches the identifier.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrDuplicateRestaurantID is returned when an insert collides with an
// existing business identifier. Callers are expected to recompute the
// identifier and retry.
var ErrDuplicateRestaurantID = errors.New("restaurant id already exists")

// RestaurantRepository is the single source of truth for registration
// records. It owns identifier uniqueness and the counts the identifier
// generator reads.
type RestaurantRepository interface {
	// CountByIDPrefix returns how many records have a business identifier
	// starting with prefix.
	CountByIDPrefix(ctx context.Context, prefix string) (int64, error)

	// Create persists a new registration. The store assigns the surrogate key
	// and timestamps onto the passed entity. Returns ErrDuplicateRestaurantID
	// when the business identifier is already taken.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// FindByRestaurantID loads a record by its business identifier.
	FindByRestaurantID(ctx context.Context, restaurantID string) (*entity.Restaurant, error)
}

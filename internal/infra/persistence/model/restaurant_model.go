// Package model contains the GORM-specific structs that map to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
// The business identifier (restaurant_id) carries the unique index that the
// registration retry loop relies on; the surrogate key stays internal.
type RestaurantModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID  string    `gorm:"type:text;not null;uniqueIndex"`
	Name          string    `gorm:"type:text;not null"`
	Category      string    `gorm:"type:text;not null"`
	CuisineTypes  []string  `gorm:"type:jsonb;serializer:json"`
	ContactPerson string    `gorm:"type:text;not null"`
	Phone         string    `gorm:"type:text;not null"`
	Email         string    `gorm:"type:text;not null"`
	Address       string    `gorm:"type:text;not null"`
	Pincode       string    `gorm:"type:text;not null"`
	City          string    `gorm:"type:text;not null"`
	State         string    `gorm:"type:text"`
	Country       string    `gorm:"type:text"`
	Coordinates   string    `gorm:"type:text"`
	Hours         string    `gorm:"type:text"`
	Website       string    `gorm:"type:text"`
	SocialLinks   string    `gorm:"type:text"`
	Description   string    `gorm:"type:text"`
	LicenseNumber string    `gorm:"type:text"`
	GSTNumber     string    `gorm:"type:text"`
	Status        string    `gorm:"type:text;not null;default:'Active'"`
	LogoURL       string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"resto/internal/domain/entity"
	domainerrors "resto/internal/domain/errors"
	"resto/internal/domain/repository"
	"resto/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// CountByIDPrefix counts records whose business identifier starts with prefix.
func (repo *restaurantRepository) CountByIDPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("restaurant_id LIKE ?", escapeLike(prefix)+"%").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restaurants by identifier prefix")
	}

	return count, nil
}

// Create persists a new registration. A unique-index collision on the
// business identifier maps to repository.ErrDuplicateRestaurantID so the
// caller can recompute and retry.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRestaurantID
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("missing required restaurant information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	// Update the entity with generated values
	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// FindByRestaurantID retrieves a record by its business identifier.
func (repo *restaurantRepository) FindByRestaurantID(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by restaurant ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// escapeLike escapes LIKE metacharacters so a prefix is matched literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:            data.ID,
		RestaurantID:  data.RestaurantID,
		Name:          data.Name,
		Category:      data.Category,
		CuisineTypes:  data.CuisineTypes,
		ContactPerson: data.ContactPerson,
		Phone:         data.Phone,
		Email:         data.Email,
		Address:       data.Address,
		Pincode:       data.Pincode,
		City:          data.City,
		State:         data.State,
		Country:       data.Country,
		Coordinates:   data.Coordinates,
		Hours:         data.Hours,
		Website:       data.Website,
		SocialLinks:   data.SocialLinks,
		Description:   data.Description,
		LicenseNumber: data.LicenseNumber,
		GSTNumber:     data.GSTNumber,
		Status:        entity.Status(data.Status),
		LogoURL:       data.LogoURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:            data.ID,
		RestaurantID:  data.RestaurantID,
		Name:          data.Name,
		Category:      data.Category,
		CuisineTypes:  data.CuisineTypes,
		ContactPerson: data.ContactPerson,
		Phone:         data.Phone,
		Email:         data.Email,
		Address:       data.Address,
		Pincode:       data.Pincode,
		City:          data.City,
		State:         data.State,
		Country:       data.Country,
		Coordinates:   data.Coordinates,
		Hours:         data.Hours,
		Website:       data.Website,
		SocialLinks:   data.SocialLinks,
		Description:   data.Description,
		LicenseNumber: data.LicenseNumber,
		GSTNumber:     data.GSTNumber,
		Status:        string(data.Status),
		LogoURL:       data.LogoURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

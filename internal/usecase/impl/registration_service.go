// Package impl provides the implementation of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "resto/internal/delivery/context"
	"resto/internal/domain/entity"
	domainerrors "resto/internal/domain/errors"
	"resto/internal/domain/identifier"
	"resto/internal/domain/repository"
	"resto/internal/domain/service"
	"resto/internal/domain/validation"
	"resto/internal/errors"
	"resto/internal/usecase"
)

// maxIdentifierAttempts bounds the insert-retry loop that resolves
// concurrent registrations racing for the same identifier sequence.
const maxIdentifierAttempts = 5

type registrationService struct {
	restaurants repository.RestaurantRepository
	logos       service.LogoStore
	logger      *slog.Logger
}

// RegistrationServiceParams defines the dependencies for the registration service.
type RegistrationServiceParams struct {
	fx.In

	Restaurants repository.RestaurantRepository
	Logos       service.LogoStore
	Logger      *slog.Logger
}

// NewRegistrationService creates a new registration usecase instance.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		restaurants: params.Restaurants,
		logos:       params.Logos,
		logger:      params.Logger,
	}
}

func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterRestaurant validates the submission, stages the logo asset,
// allocates a business identifier and persists the record. The logo is
// written before the insert and discarded again if the insert ultimately
// fails, so the store never accumulates assets without a matching row.
func (srv *registrationService) RegisterRestaurant(
	ctx context.Context,
	input *usecase.RegisterRestaurantInput,
) (*usecase.RegisterRestaurantOutput, error) {
	if failure := srv.validate(ctx, input); failure != nil {
		return nil, failure
	}

	logoURL, err := srv.stageLogo(ctx, input.Logo)
	if err != nil {
		return nil, err
	}

	restaurant := buildRestaurant(input, logoURL)

	if err := srv.insertWithFreshIdentifier(ctx, restaurant); err != nil {
		srv.discardLogo(ctx, logoURL)

		return nil, err
	}

	srv.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Restaurant registered",
		slog.String("restaurantId", restaurant.RestaurantID),
		slog.String("name", restaurant.Name),
	)

	return &usecase.RegisterRestaurantOutput{Restaurant: restaurant}, nil
}

// validate runs the ordered rule set and maps the first failure to the
// error the client contract expects.
func (srv *registrationService) validate(ctx context.Context, input *usecase.RegisterRestaurantInput) error {
	candidate := toCandidate(input)

	failures := validation.Validate(candidate)
	if len(failures) == 0 {
		return nil
	}

	first := failures[0]
	srv.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Registration rejected by rule set",
		slog.String("field", first.Field),
		slog.String("reason", first.Message),
	)

	if first.Field == "logo" {
		return errors.WithStack(domainerrors.ErrUnsupportedLogoFormat)
	}

	return domainerrors.NewFieldValidationError(first.Field, first.Message)
}

// stageLogo writes the uploaded asset to the store ahead of the insert.
// A submission without a logo stages nothing and yields an empty path.
func (srv *registrationService) stageLogo(ctx context.Context, logo *usecase.LogoUpload) (string, error) {
	if logo == nil {
		return "", nil
	}

	content, err := logo.Open()
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrLogoStoreFailed, err.Error())
	}
	defer content.Close()

	publicPath, err := srv.logos.Save(ctx, logo.Filename, content)
	if err != nil {
		srv.log(ctx).LogAttrs(ctx, slog.LevelError, "Failed to store logo",
			slog.String("filename", logo.Filename),
			slog.Any("error", err),
		)

		return "", errors.Wrap(domainerrors.ErrLogoStoreFailed, err.Error())
	}

	return publicPath, nil
}

// discardLogo removes a staged asset after a failed insert. Failures here
// are logged and swallowed; the caller's error is the one that matters.
func (srv *registrationService) discardLogo(ctx context.Context, publicPath string) {
	if publicPath == "" {
		return
	}

	if err := srv.logos.Delete(ctx, publicPath); err != nil {
		srv.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Failed to discard staged logo",
			slog.String("path", publicPath),
			slog.Any("error", err),
		)
	}
}

// insertWithFreshIdentifier allocates an identifier from the current row
// count and inserts. When two submissions race for the same sequence number
// the unique index rejects the loser, which recounts and tries again.
func (srv *registrationService) insertWithFreshIdentifier(ctx context.Context, restaurant *entity.Restaurant) error {
	for attempt := 1; attempt <= maxIdentifierAttempts; attempt++ {
		restaurantID, err := identifier.Next(ctx, srv.restaurants, restaurant.City, restaurant.Category)
		if err != nil {
			return errors.Wrap(err, "failed to allocate restaurant identifier")
		}

		restaurant.RestaurantID = restaurantID

		err = srv.restaurants.Create(ctx, restaurant)
		if err == nil {
			return nil
		}

		if errors.Is(err, repository.ErrDuplicateRestaurantID) {
			srv.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Identifier collision, retrying",
				slog.String("restaurantId", restaurantID),
				slog.Int("attempt", attempt),
			)

			continue
		}

		return errors.Wrap(err, "failed to persist registration")
	}

	return errors.WithStack(domainerrors.ErrRestaurantIDConflict)
}

func toCandidate(input *usecase.RegisterRestaurantInput) *validation.Candidate {
	candidate := &validation.Candidate{
		Name:          input.Name,
		Category:      input.Category,
		CuisineTypes:  input.CuisineTypes,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		Pincode:       input.Pincode,
		City:          input.City,
		State:         input.State,
		Country:       input.Country,
		Coordinates:   input.Coordinates,
		Hours:         input.Hours,
		Website:       input.Website,
		SocialLinks:   input.SocialLinks,
		Description:   input.Description,
		LicenseNumber: input.LicenseNumber,
		GSTNumber:     input.GSTNumber,
		Status:        input.Status,
	}
	if input.Logo != nil {
		candidate.LogoFilename = input.Logo.Filename
	}

	return candidate
}

func buildRestaurant(input *usecase.RegisterRestaurantInput, logoURL string) *entity.Restaurant {
	status := entity.Status(input.Status)
	if input.Status == "" {
		status = entity.StatusActive
	}

	return &entity.Restaurant{
		Name:          input.Name,
		Category:      input.Category,
		CuisineTypes:  input.CuisineTypes,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		Pincode:       input.Pincode,
		City:          input.City,
		State:         input.State,
		Country:       input.Country,
		Coordinates:   input.Coordinates,
		Hours:         input.Hours,
		Website:       input.Website,
		SocialLinks:   input.SocialLinks,
		Description:   input.Description,
		LicenseNumber: input.LicenseNumber,
		GSTNumber:     input.GSTNumber,
		Status:        status,
		LogoURL:       logoURL,
	}
}

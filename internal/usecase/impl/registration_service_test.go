package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"resto/internal/domain/entity"
	domainerrors "resto/internal/domain/errors"
	"resto/internal/domain/repository"
	"resto/internal/errors"
	"resto/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRestaurantRepository is an in-memory repository with the same
// uniqueness semantics as the real store. Count and Create take the lock
// separately, so concurrent registrations can race exactly like they would
// against the database.
type memoryRestaurantRepository struct {
	mu      sync.Mutex
	records map[string]*entity.Restaurant

	// beforeCreate, when set, runs inside Create before the uniqueness
	// check. Tests use it to interleave competing inserts.
	beforeCreate func(repo *memoryRestaurantRepository)
	createErr    error
}

func newMemoryRepository() *memoryRestaurantRepository {
	return &memoryRestaurantRepository{
		records: make(map[string]*entity.Restaurant),
	}
}

func (repo *memoryRestaurantRepository) CountByIDPrefix(_ context.Context, prefix string) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var count int64
	for id := range repo.records {
		if strings.HasPrefix(id, prefix) {
			count++
		}
	}

	return count, nil
}

func (repo *memoryRestaurantRepository) Create(_ context.Context, restaurant *entity.Restaurant) error {
	if hook := repo.beforeCreate; hook != nil {
		repo.beforeCreate = nil
		hook(repo)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.createErr != nil {
		return repo.createErr
	}

	if _, exists := repo.records[restaurant.RestaurantID]; exists {
		return repository.ErrDuplicateRestaurantID
	}

	clone := *restaurant
	repo.records[restaurant.RestaurantID] = &clone

	return nil
}

func (repo *memoryRestaurantRepository) FindByRestaurantID(_ context.Context, restaurantID string) (*entity.Restaurant, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	restaurant, ok := repo.records[restaurantID]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}

	clone := *restaurant

	return &clone, nil
}

func (repo *memoryRestaurantRepository) seed(restaurantID string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.records[restaurantID] = &entity.Restaurant{RestaurantID: restaurantID}
}

// fakeLogoStore records saves and deletes without touching disk.
type fakeLogoStore struct {
	mu      sync.Mutex
	saves   []string
	deletes []string
	saveErr error
}

func (store *fakeLogoStore) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	if store.saveErr != nil {
		return "", store.saveErr
	}

	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	publicPath := "/uploads/" + filename
	store.saves = append(store.saves, publicPath)

	return publicPath, nil
}

func (store *fakeLogoStore) Delete(_ context.Context, publicPath string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.deletes = append(store.deletes, publicPath)

	return nil
}

func newTestService(repo *memoryRestaurantRepository, store *fakeLogoStore) usecase.RegistrationUsecase {
	return NewRegistrationService(RegistrationServiceParams{
		Restaurants: repo,
		Logos:       store,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func validInput() *usecase.RegisterRestaurantInput {
	return &usecase.RegisterRestaurantInput{
		Name:          "Spice Garden",
		Category:      "Restaurant",
		CuisineTypes:  []string{"Indian", "Chinese"},
		ContactPerson: "Asha Menon",
		Phone:         "9876543210",
		Email:         "owner@spicegarden.in",
		Address:       "12 MG Road, Kochi",
		Pincode:       "682001",
		City:          "Kochi",
		State:         "Kerala",
		Country:       "India",
	}
}

func logoUpload(filename, content string) *usecase.LogoUpload {
	return &usecase.LogoUpload{
		Filename: filename,
		Size:     int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestRegisterRestaurant_Success(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeLogoStore{}
	svc := newTestService(repo, store)

	input := validInput()
	input.Logo = logoUpload("logo.png", "png-bytes")

	output, err := svc.RegisterRestaurant(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, "KOCRES0000001", output.Restaurant.RestaurantID)
	assert.Equal(t, entity.StatusActive, output.Restaurant.Status)
	assert.Equal(t, "/uploads/logo.png", output.Restaurant.LogoURL)

	stored, err := repo.FindByRestaurantID(context.Background(), "KOCRES0000001")
	require.NoError(t, err)
	assert.Equal(t, "Spice Garden", stored.Name)
	assert.Equal(t, []string{"Indian", "Chinese"}, stored.CuisineTypes)

	assert.Len(t, store.saves, 1)
	assert.Empty(t, store.deletes)
}

func TestRegisterRestaurant_WithoutLogo(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeLogoStore{}
	svc := newTestService(repo, store)

	output, err := svc.RegisterRestaurant(context.Background(), validInput())
	require.NoError(t, err)
	assert.Empty(t, output.Restaurant.LogoURL)
	assert.Empty(t, store.saves)
}

func TestRegisterRestaurant_SequenceGrowsPerPrefix(t *testing.T) {
	repo := newMemoryRepository()
	repo.seed("KOCRES0000001")
	repo.seed("KOCRES0000002")
	repo.seed("PUNCAF0000001")
	svc := newTestService(repo, &fakeLogoStore{})

	output, err := svc.RegisterRestaurant(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "KOCRES0000003", output.Restaurant.RestaurantID)
}

func TestRegisterRestaurant_FirstValidationFailureWins(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeLogoStore{}
	svc := newTestService(repo, store)

	input := validInput()
	input.Phone = "123"
	input.GSTNumber = "also-bad"

	_, err := svc.RegisterRestaurant(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Phone must be 10 digits", appErr.Message())
	assert.Equal(t, "phone", appErr.Details())

	assert.Empty(t, store.saves)
	_, findErr := repo.FindByRestaurantID(context.Background(), "KOCRES0000001")
	assert.ErrorIs(t, findErr, repository.ErrRestaurantNotFound)
}

func TestRegisterRestaurant_RejectsGifLogoBeforeStoring(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeLogoStore{}
	svc := newTestService(repo, store)

	input := validInput()
	input.Logo = logoUpload("animation.gif", "gif-bytes")

	_, err := svc.RegisterRestaurant(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedLogoFormat)

	assert.Empty(t, store.saves)
	assert.Empty(t, store.deletes)
}

func TestRegisterRestaurant_RetriesOnIdentifierCollision(t *testing.T) {
	repo := newMemoryRepository()
	// A competing registration lands between this submission's count and
	// insert, stealing KOCRES0000001.
	repo.beforeCreate = func(repo *memoryRestaurantRepository) {
		repo.seed("KOCRES0000001")
	}
	svc := newTestService(repo, &fakeLogoStore{})

	output, err := svc.RegisterRestaurant(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "KOCRES0000002", output.Restaurant.RestaurantID)
}

func TestRegisterRestaurant_GivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := newMemoryRepository()
	repo.createErr = repository.ErrDuplicateRestaurantID
	store := &fakeLogoStore{}
	svc := newTestService(repo, store)

	input := validInput()
	input.Logo = logoUpload("logo.png", "png-bytes")

	_, err := svc.RegisterRestaurant(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrRestaurantIDConflict)

	// The staged logo must not outlive the failed registration.
	require.Len(t, store.deletes, 1)
	assert.Equal(t, store.saves[0], store.deletes[0])
}

func TestRegisterRestaurant_DiscardsLogoOnInsertFailure(t *testing.T) {
	repo := newMemoryRepository()
	repo.createErr = domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create restaurant")
	store := &fakeLogoStore{}
	svc := newTestService(repo, store)

	input := validInput()
	input.Logo = logoUpload("logo.png", "png-bytes")

	_, err := svc.RegisterRestaurant(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())

	require.Len(t, store.deletes, 1)
	assert.Equal(t, store.saves[0], store.deletes[0])
}

func TestRegisterRestaurant_LogoStoreFailure(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeLogoStore{saveErr: errors.New("disk full")}
	svc := newTestService(repo, store)

	input := validInput()
	input.Logo = logoUpload("logo.png", "png-bytes")

	_, err := svc.RegisterRestaurant(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrLogoStoreFailed)

	// Nothing was staged, nothing was inserted.
	_, findErr := repo.FindByRestaurantID(context.Background(), "KOCRES0000001")
	assert.ErrorIs(t, findErr, repository.ErrRestaurantNotFound)
}

func TestRegisterRestaurant_ConcurrentSubmissionsGetDistinctIDs(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo, &fakeLogoStore{})

	// Five concurrent submissions to the same city and category. Each retry
	// implies another submission succeeded in between, so five attempts per
	// submission always suffice for five competitors.
	const submissions = 5

	ids := make(chan string, submissions)
	var wg sync.WaitGroup
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			input := validInput()
			input.Name = fmt.Sprintf("Spice Garden %d", n)

			output, err := svc.RegisterRestaurant(context.Background(), input)
			if assert.NoError(t, err) {
				ids <- output.Restaurant.RestaurantID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "identifier %s assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, submissions)
}

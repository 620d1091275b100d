package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"photobooking/internal/database"
	"photobooking/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }

func TestBookingRepository_InsertAndGet(t *testing.T) {
	repo := NewBookingRepository(setupDB(t))
	ctx := context.Background()

	b := &domain.Booking{
		BookingID:      "6f1c2a8e-0000-4000-8000-000000000001",
		EventType:      strPtr("wedding"),
		ClientName:     strPtr("Asha"),
		PhotographerID: strPtr("ph-01"),
		CreatedAt:      "2026-10-18T10:00:00Z",
	}
	require.NoError(t, repo.Insert(ctx, b))

	got, err := repo.GetByID(ctx, b.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "wedding", *got.EventType)
	assert.Nil(t, got.StartDate)
	assert.Equal(t, "", got.SpecialRequests)
}

func TestBookingRepository_DuplicateID(t *testing.T) {
	repo := NewBookingRepository(setupDB(t))
	ctx := context.Background()

	b := &domain.Booking{BookingID: "dup", CreatedAt: "2026-10-18T10:00:00Z"}
	require.NoError(t, repo.Insert(ctx, b))

	again := &domain.Booking{BookingID: "dup", CreatedAt: "2026-10-18T10:00:01Z"}
	assert.ErrorIs(t, repo.Insert(ctx, again), ErrDuplicateBooking)
}

func TestBookingRepository_SameBusinessDataAccepted(t *testing.T) {
	repo := NewBookingRepository(setupDB(t))
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		require.NoError(t, repo.Insert(ctx, &domain.Booking{
			BookingID:      id,
			PhotographerID: strPtr("ph-01"),
			StartDate:      strPtr("2026-12-01"),
			CreatedAt:      "2026-10-18T10:00:00Z",
		}))
	}

	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBookingRepository_NotFound(t *testing.T) {
	repo := NewBookingRepository(setupDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestPhotographerRepository_UpsertListGet(t *testing.T) {
	repo := NewPhotographerRepository(setupDB(t))
	ctx := context.Background()

	ps := []domain.Photographer{
		{ID: "ph-02", Name: "Jane Smith", Skills: []string{"Travel", "Nature"}, Availability: domain.AvailabilityAvailable},
		{ID: "ph-01", Name: "John Doe", Skills: []string{"Weddings", "Portraits"}, Availability: domain.AvailabilityAvailable},
	}
	require.NoError(t, repo.Upsert(ctx, ps))

	// re-seeding replaces rather than duplicates
	ps[0].Availability = domain.AvailabilityBooked
	require.NoError(t, repo.Upsert(ctx, ps))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ph-01", list[0].ID)
	assert.Equal(t, []string{"Weddings", "Portraits"}, list[0].Skills)
	assert.Equal(t, domain.AvailabilityBooked, list[1].Availability)

	got, err := repo.GetByID(ctx, "ph-02")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.Name)

	_, err = repo.GetByID(ctx, "ph-99")
	assert.ErrorIs(t, err, ErrPhotographerNotFound)
}

func TestPhotographerRepository_SkillsKeepCommas(t *testing.T) {
	repo := NewPhotographerRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []domain.Photographer{{
		ID:           "ph-07",
		Name:         "Priya Nair",
		Skills:       []string{"Weddings, Receptions", "Portraits", " portraits "},
		Availability: domain.AvailabilityAvailable,
	}}))

	got, err := repo.GetByID(ctx, "ph-07")
	require.NoError(t, err)
	assert.Equal(t, []string{"Weddings, Receptions", "Portraits"}, got.Skills)
}

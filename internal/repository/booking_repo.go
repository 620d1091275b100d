package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"photobooking/internal/domain"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDuplicateBooking = errors.New("booking id already exists")
)

const uniqueViolation = "23505"

// BookingRepository is the append-only booking store. It exposes no update
// or delete.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Insert writes b as a single row. Only the primary key is unique; any
// amount of overlapping business data is accepted.
func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Create(b).Error
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return ErrDuplicateBooking
	}
	return err
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Where("booking_id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns the newest bookings first.
func (r *BookingRepository) List(ctx context.Context, limit int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

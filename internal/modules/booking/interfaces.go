package booking

import (
	"context"

	"photobooking/internal/domain"
	"photobooking/internal/gateway/notify"
)

// BookingRepository is the append-only booking store.
type BookingRepository interface {
	Insert(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, limit int) ([]domain.Booking, error)
}

type PhotographerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Photographer, error)
}

// PhotographerLister feeds the photographer picker of the booking form.
type PhotographerLister interface {
	Photographers(ctx context.Context) ([]domain.Photographer, error)
}

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b notify.BookingConfirmation) bool
	SendSMS(ctx context.Context, phone, message string) bool
}

type Recorder interface {
	BookingSubmitted(ok bool)
}

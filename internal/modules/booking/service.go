package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"photobooking/internal/domain"
	"photobooking/internal/gateway/notify"
	"photobooking/internal/repository"
)

// TimestampLayout is fixed width so stored timestamps sort as text.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

const pendingLocation = "To be confirmed with your photographer"

type Service struct {
	bookings      BookingRepository
	photographers PhotographerRepository
	notifier      Notifier
	recorder      Recorder
	log           *zap.Logger

	newID func() string
	now   func() time.Time
}

// NewService wires the booking workflow. notifier and recorder may be nil.
func NewService(bookings BookingRepository, photographers PhotographerRepository, notifier Notifier, recorder Recorder, log *zap.Logger) *Service {
	return &Service{
		bookings:      bookings,
		photographers: photographers,
		notifier:      notifier,
		recorder:      recorder,
		log:           log.With(zap.String("component", "booking")),
		newID:         uuid.NewString,
		now:           time.Now,
	}
}

// SubmitBooking stores the submitted form as a new booking and returns its
// id. Nothing is validated and no notification is sent.
func (s *Service) SubmitBooking(ctx context.Context, form map[string]string) (string, error) {
	b := bookingFromForm(form)
	b.BookingID = s.newID()
	b.CreatedAt = s.now().UTC().Format(TimestampLayout)

	if err := s.bookings.Insert(ctx, b); err != nil {
		s.record(false)
		s.log.Error("booking insert failed", zap.String("booking_id", b.BookingID), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.record(true)
	s.log.Info("booking submitted",
		zap.String("booking_id", b.BookingID),
		zap.String("photographer_id", domain.StringOr(b.PhotographerID, "")),
	)
	return b.BookingID, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Booking, error) {
	return s.bookings.List(ctx, limit)
}

// SendConfirmation emails the client of bookingID, and texts them when a
// phone number was given. It fails only when the email is not delivered.
func (s *Service) SendConfirmation(ctx context.Context, bookingID string) (*Delivery, error) {
	if s.notifier == nil {
		return nil, ErrNotifierUnavailable
	}

	b, err := s.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	details := s.confirmationDetails(ctx, b)
	d := &Delivery{BookingID: b.BookingID}
	d.Email = s.notifier.SendBookingConfirmation(ctx, details)

	if details.ClientPhone != "" {
		msg := fmt.Sprintf("Capture Moments: your %s with %s on %s is confirmed. Ref %s.",
			details.Service, details.PhotographerName, details.Date, shortRef(b.BookingID))
		d.SMS = s.notifier.SendSMS(ctx, details.ClientPhone, msg)
	}

	if !d.Email {
		return d, ErrNotificationFailed
	}
	return d, nil
}

func (s *Service) confirmationDetails(ctx context.Context, b *domain.Booking) notify.BookingConfirmation {
	photographer := "your photographer"
	if id := domain.StringOr(b.PhotographerID, ""); id != "" {
		p, err := s.photographers.GetByID(ctx, id)
		if err == nil {
			photographer = p.Name
		} else {
			s.log.Warn("photographer lookup failed", zap.String("photographer_id", id), zap.Error(err))
		}
	}

	service := domain.StringOr(b.Package, "")
	if service == "" {
		service = domain.StringOr(b.EventType, "photography session")
	}

	date := domain.StringOr(b.StartDate, "")
	if end := domain.StringOr(b.EndDate, ""); end != "" && end != date {
		date = date + " to " + end
	}

	return notify.BookingConfirmation{
		ClientName:       domain.StringOr(b.ClientName, ""),
		ClientEmail:      domain.StringOr(b.ClientEmail, ""),
		ClientPhone:      domain.StringOr(b.ClientPhone, ""),
		PhotographerName: photographer,
		Service:          service,
		Date:             date,
		Location:         pendingLocation,
	}
}

func (s *Service) record(ok bool) {
	if s.recorder != nil {
		s.recorder.BookingSubmitted(ok)
	}
}

func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

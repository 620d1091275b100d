package gallery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"photobooking/internal/domain"
	"photobooking/internal/gateway/notify"
	"photobooking/internal/gateway/storage"
)

type Service struct {
	store    Store
	notifier Notifier
	siteURL  string
	log      *zap.Logger
}

// NewService builds the gallery workflow. store and notifier may be nil when
// the matching gateway could not be configured.
func NewService(store Store, notifier Notifier, siteURL string, log *zap.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		siteURL:  strings.TrimRight(siteURL, "/"),
		log:      log.With(zap.String("component", "gallery")),
	}
}

// Assemble signs the given photos of eventID. With no filenames, every photo
// stored for the event is used.
func (s *Service) Assemble(ctx context.Context, eventID string, filenames []string) (*domain.Gallery, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	for _, name := range filenames {
		if !storage.ValidFilename(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilename, name)
		}
	}
	if len(filenames) == 0 {
		names, err := s.store.ListEventPhotos(ctx, eventID)
		if err != nil {
			return nil, err
		}
		filenames = names
	}
	return s.store.AssembleGallery(ctx, eventID, filenames)
}

// Open assembles the gallery for a client holding its access code.
func (s *Service) Open(ctx context.Context, eventID, code string) (*domain.Gallery, error) {
	if !strings.EqualFold(strings.TrimSpace(code), domain.AccessCodeFor(eventID)) {
		return nil, ErrAccessDenied
	}
	return s.Assemble(ctx, eventID, nil)
}

// Link is the public page of the gallery, access code included.
func (s *Service) Link(eventID string) string {
	q := url.Values{"code": {domain.AccessCodeFor(eventID)}}
	return s.siteURL + "/gallery/" + url.PathEscape(eventID) + "?" + q.Encode()
}

// Deliver assembles the gallery and tells the recipient it is ready by email
// and text message. Channel failures are reported in the result, not as
// errors.
func (s *Service) Deliver(ctx context.Context, eventID string, filenames []string, to Recipient) (*Delivery, error) {
	if s.notifier == nil {
		return nil, ErrNotifierUnavailable
	}
	if to.Email == "" && to.Phone == "" {
		return nil, ErrNoRecipient
	}

	g, err := s.Assemble(ctx, eventID, filenames)
	if err != nil {
		return nil, err
	}
	if g.PhotoCount == 0 {
		return nil, ErrEmptyGallery
	}

	d := &Delivery{Gallery: g, Link: s.Link(eventID)}
	msg := notify.GalleryReady{
		ClientName:  to.Name,
		ClientEmail: to.Email,
		ClientPhone: to.Phone,
		EventID:     g.EventID,
		AccessCode:  g.AccessCode,
		PhotoCount:  g.PhotoCount,
		GalleryURL:  d.Link,
	}

	if to.Email != "" {
		d.Email = s.notifier.SendGalleryReady(ctx, msg)
	}
	if to.Phone != "" {
		d.SMS = s.notifier.SendSMS(ctx, to.Phone, msg.SMSText())
	}

	s.log.Info("gallery delivered",
		zap.String("event_id", eventID),
		zap.Int("photos", g.PhotoCount),
		zap.Bool("email", d.Email),
		zap.Bool("sms", d.SMS),
	)
	return d, nil
}

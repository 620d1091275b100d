package gallery

import (
	"context"

	"photobooking/internal/domain"
	"photobooking/internal/gateway/notify"
)

type Store interface {
	AssembleGallery(ctx context.Context, eventID string, filenames []string) (*domain.Gallery, error)
	ListEventPhotos(ctx context.Context, eventID string) ([]string, error)
}

type Notifier interface {
	SendGalleryReady(ctx context.Context, g notify.GalleryReady) bool
	SendSMS(ctx context.Context, phone, message string) bool
}

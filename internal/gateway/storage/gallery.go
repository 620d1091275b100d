package storage

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"photobooking/internal/domain"
	"photobooking/internal/pkg/utils"
)

// AssembleGallery signs every photo of eventID and its thumbnail with the
// default TTL. A photo whose name is not a plain filename, or whose URL (or
// thumbnail URL) cannot be issued, is left out; the rest of the gallery is
// still returned. Only a cancelled context fails the call.
func (g *Gateway) AssembleGallery(ctx context.Context, eventID string, filenames []string) (*domain.Gallery, error) {
	photos := make([]domain.GalleryPhoto, 0, len(filenames))

	for _, name := range filenames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !ValidFilename(name) {
			g.log.Warn("photo omitted from gallery: invalid filename", zap.String("event_id", eventID), zap.String("filename", name))
			continue
		}

		url, err := g.IssueAccessURL(ctx, EventKey(eventID, name), 0)
		if err != nil {
			g.log.Info("photo omitted from gallery", zap.String("event_id", eventID), zap.String("filename", name))
			continue
		}
		thumb, err := g.IssueAccessURL(ctx, ThumbnailKey(eventID, name), 0)
		if err != nil {
			g.log.Info("photo omitted from gallery: thumbnail", zap.String("event_id", eventID), zap.String("filename", name))
			continue
		}

		photos = append(photos, domain.GalleryPhoto{
			Filename:     name,
			URL:          url,
			ThumbnailURL: thumb,
		})
	}

	return &domain.Gallery{
		EventID:    eventID,
		CreatedAt:  g.now().UTC().Format(time.RFC3339),
		PhotoCount: len(photos),
		Photos:     photos,
		AccessCode: domain.AccessCodeFor(eventID),
	}, nil
}

// ListEventPhotos returns the photo filenames stored directly under the
// event prefix, in key order. Thumbnails are not included.
func (g *Gateway) ListEventPhotos(ctx context.Context, eventID string) ([]string, error) {
	const op = "storage.ListEventPhotos"
	prefix := EventKey(eventID, "") + "/"

	p := s3.NewListObjectsV2Paginator(g.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(g.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	var names []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, g.fail(op, classify(op, err), zap.String("prefix", prefix))
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if utils.IsPhotoFile(name) {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

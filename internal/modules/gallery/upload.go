package gallery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"photobooking/internal/gateway/storage"
	"photobooking/internal/pkg/utils"
)

const thumbnailsDir = "thumbnails"

type Uploader interface {
	StoreAsset(ctx context.Context, localPath, key string, meta storage.Metadata) (string, error)
}

// UploadResult lists what an event upload stored.
type UploadResult struct {
	Photos     []string
	Thumbnails []string
	Failed     []string
}

// UploadEventDir stores every photo file of dir as a photo of eventID and
// every photo of dir/thumbnails as its thumbnail. A failed file is recorded
// and skipped. The call fails when dir is unreadable, or with
// ErrNothingUploaded when no photo at all could be stored.
func UploadEventDir(ctx context.Context, up Uploader, eventID, dir string, meta storage.Metadata, log *zap.Logger) (*UploadResult, error) {
	photos, err := regularFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("read event dir: %w", err)
	}
	thumbs, err := regularFiles(filepath.Join(dir, thumbnailsDir))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read thumbnails dir: %w", err)
	}

	res := &UploadResult{}
	for _, name := range photos {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if _, err := up.StoreAsset(ctx, filepath.Join(dir, name), storage.EventKey(eventID, name), meta); err != nil {
			res.Failed = append(res.Failed, name)
			continue
		}
		res.Photos = append(res.Photos, name)
	}
	if len(res.Photos) == 0 && len(res.Failed) > 0 {
		return res, ErrNothingUploaded
	}

	have := make(map[string]bool, len(thumbs))
	for _, name := range thumbs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if _, err := up.StoreAsset(ctx, filepath.Join(dir, thumbnailsDir, name), storage.ThumbnailKey(eventID, name), meta); err != nil {
			res.Failed = append(res.Failed, filepath.Join(thumbnailsDir, name))
			continue
		}
		have[name] = true
		res.Thumbnails = append(res.Thumbnails, name)
	}

	for _, name := range res.Photos {
		if !have[name] {
			log.Warn("photo has no thumbnail and will be left out of the gallery",
				zap.String("event_id", eventID), zap.String("filename", name))
		}
	}
	return res, nil
}

func regularFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && utils.IsPhotoFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

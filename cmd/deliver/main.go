package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"photobooking/internal/config"
	"photobooking/internal/gateway/notify"
	"photobooking/internal/gateway/storage"
	"photobooking/internal/metrics"
	"photobooking/internal/modules/gallery"
	"photobooking/internal/pkg/logger"
)

// deliver uploads an event's photos, assembles the gallery and tells the
// client it is ready.
//
//	deliver --event wedding_001 --dir ./out/wedding_001 --email a@b.c --phone 9876543210
func main() {
	var (
		eventID    = flag.String("event", "", "event id (required)")
		dir        = flag.String("dir", "", "directory of photos; thumbnails in <dir>/thumbnails (required)")
		name       = flag.String("name", "", "client name used in the messages")
		email      = flag.String("email", "", "client email")
		phone      = flag.String("phone", "", "client phone")
		uploadedBy = flag.String("uploaded-by", "ops", "uploader recorded in object metadata")
		eventType  = flag.String("event-type", "", "event type recorded in object metadata")
		location   = flag.String("location", "", "event location recorded in object metadata")
		skipUpload = flag.Bool("skip-upload", false, "only assemble and notify")
	)
	flag.Parse()

	if *eventID == "" || (*dir == "" && !*skipUpload) {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Missing credentials or bucket are fatal here.
	store, err := storage.NewFromEnv(ctx, cfg.PhotoBucket, cfg.AWSRegion, cfg.SignedURLTTL, m, lg)
	if err != nil {
		lg.Fatal("object storage unavailable", zap.Error(err))
	}
	notifier, err := notify.NewFromEnv(ctx, cfg.AWSRegion, notify.Options{
		From:        cfg.MailFrom,
		CountryCode: cfg.SMSCountryCode,
		Observer:    m,
		Outcomes:    m,
	}, lg)
	if err != nil {
		lg.Fatal("notifications unavailable", zap.Error(err))
	}

	var filenames []string
	if !*skipUpload {
		res, err := gallery.UploadEventDir(ctx, store, *eventID, *dir, storage.Metadata{
			UploadedBy: *uploadedBy,
			EventType:  *eventType,
			Location:   *location,
			UploadedAt: time.Now(),
		}, lg)
		if err != nil {
			lg.Fatal("upload failed", zap.Error(err))
		}
		lg.Info("upload finished",
			zap.String("bucket", store.Bucket()),
			zap.Int("photos", len(res.Photos)),
			zap.Int("thumbnails", len(res.Thumbnails)),
			zap.Strings("failed", res.Failed),
		)
		filenames = res.Photos
	}

	svc := gallery.NewService(store, notifier, cfg.SiteURL, lg)
	d, err := svc.Deliver(ctx, *eventID, filenames, gallery.Recipient{
		Name:  *name,
		Email: *email,
		Phone: *phone,
	})
	if err != nil {
		lg.Fatal("delivery failed", zap.String("event_id", *eventID), zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		lg.Error("write summary", zap.Error(err))
	}
}

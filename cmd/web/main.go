package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"photobooking/internal/config"
	"photobooking/internal/database"
	"photobooking/internal/gateway/notify"
	"photobooking/internal/gateway/storage"
	"photobooking/internal/metrics"
	"photobooking/internal/modules/booking"
	"photobooking/internal/modules/catalog"
	"photobooking/internal/modules/gallery"
	"photobooking/internal/modules/session"
	jwtsvc "photobooking/internal/pkg/jwt"
	"photobooking/internal/pkg/logger"
	"photobooking/internal/repository"
	"photobooking/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, lg)
	if err != nil {
		lg.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}

	ctx := context.Background()
	m := metrics.New()

	photographerRepo := repository.NewPhotographerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	seed, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		lg.Fatal("catalog load failed", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}

	if existing, err := photographerRepo.List(ctx); err == nil && len(existing) == 0 {
		if err := photographerRepo.Upsert(ctx, seed.Photographers); err != nil {
			lg.Fatal("catalog seed failed", zap.Error(err))
		}
		lg.Info("catalog seeded", zap.Int("photographers", len(seed.Photographers)))
	}

	var cache catalog.Cache
	if rdb := database.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); rdb != nil {
		defer rdb.Close()
		if err := database.PingRedis(ctx, rdb); err != nil {
			lg.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		} else {
			cache = catalog.NewRedisCache(rdb)
		}
	}

	// Gateways are optional for the site itself: without them the ops
	// endpoints answer 503.
	var (
		bookingNotifier booking.Notifier
		galleryNotifier gallery.Notifier
		galleryStore    gallery.Store
	)
	notifier, err := notify.NewFromEnv(ctx, cfg.AWSRegion, notify.Options{
		From:        cfg.MailFrom,
		CountryCode: cfg.SMSCountryCode,
		Observer:    m,
		Outcomes:    m,
	}, lg)
	if err != nil {
		lg.Warn("notifications disabled", zap.Error(err))
	} else {
		bookingNotifier, galleryNotifier = notifier, notifier
	}

	store, err := storage.NewFromEnv(ctx, cfg.PhotoBucket, cfg.AWSRegion, cfg.SignedURLTTL, m, lg)
	if err != nil {
		lg.Warn("object storage disabled", zap.Error(err))
	} else {
		galleryStore = store
	}

	catalogService := catalog.NewService(photographerRepo, seed.Services, cache, cfg.CatalogCacheTTL, lg)
	bookingService := booking.NewService(bookingRepo, photographerRepo, bookingNotifier, m, lg)
	galleryService := gallery.NewService(galleryStore, galleryNotifier, cfg.SiteURL, lg)

	tokens := jwtsvc.New(cfg.SessionSecret, cfg.SessionTTL)

	router, err := server.NewRouter(server.Deps{
		DB:              db,
		Log:             lg,
		Metrics:         m,
		Sessions:        session.NewManager(tokens, cfg.IsProdLike(), lg),
		Catalog:         catalogService,
		Bookings:        bookingService,
		Gallery:         galleryService,
		NotifyOnBooking: cfg.NotifyOnBooking,
		OpsToken:        cfg.OpsToken,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	if err != nil {
		lg.Fatal("router setup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("server listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lg.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("forced shutdown", zap.Error(err))
	}
}

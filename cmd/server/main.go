package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"serenityplace/internal/auth"
	"serenityplace/internal/config"
	"serenityplace/internal/handlers"
	"serenityplace/internal/imagestore"
	"serenityplace/internal/middleware"
	"serenityplace/internal/migrate"
	"serenityplace/internal/repository/postgres"
	"serenityplace/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	var logger *zap.Logger
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	blogRepo := postgres.NewBlogRepo(db)
	galleryRepo := postgres.NewGalleryRepo(db)
	contactRepo := postgres.NewContactRepo(db)

	var images imagestore.Store = imagestore.Disabled{}
	if cfg.S3Enabled() {
		images, err = imagestore.NewS3(ctx, imagestore.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			logger.Fatal("image store init failed", zap.Error(err))
		}
	} else {
		logger.Warn("no S3 bucket configured, gallery uploads will use placeholders")
	}

	userSvc := service.NewUserService(userRepo, cfg.FirstAdminEmail, logger)
	blogSvc := service.NewBlogService(blogRepo)
	gallerySvc := service.NewGalleryService(galleryRepo, images, cfg.PlaceholderImageURL, logger)
	contactSvc := service.NewContactService(contactRepo)

	if err := userSvc.EnsureFirstAdmin(ctx, cfg.FirstAdminEmail, cfg.FirstAdminPassword, cfg.FirstAdminName); err != nil {
		logger.Fatal("bootstrap admin failed", zap.Error(err))
	}

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret))
	authn := middleware.NewAuthenticator(tokens, userRepo)

	router := handlers.NewRouter(handlers.Deps{
		Auth:    handlers.NewAuthHandler(userSvc, tokens, logger),
		Blog:    handlers.NewBlogHandler(blogSvc, authn, logger),
		Gallery: handlers.NewGalleryHandler(gallerySvc, logger),
		Contact: handlers.NewContactHandler(contactSvc, logger),
		Authn:   authn,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-backoffice-api/api/swagger"
	"github.com/noah-isme/school-backoffice-api/internal/handler"
	"github.com/noah-isme/school-backoffice-api/internal/middleware"
	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
	"github.com/noah-isme/school-backoffice-api/internal/service"
	"github.com/noah-isme/school-backoffice-api/pkg/config"
	"github.com/noah-isme/school-backoffice-api/pkg/database"
	"github.com/noah-isme/school-backoffice-api/pkg/logger"
	"github.com/noah-isme/school-backoffice-api/pkg/ratelimit"
	"github.com/noah-isme/school-backoffice-api/pkg/sms"
	"github.com/noah-isme/school-backoffice-api/pkg/storage"
)

// @title School Back-Office API
// @version 1.0.0
// @description Administrative records for academics, finance and communication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	models.SetDateLocation(cfg.School.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	metrics := service.NewMetricsService()

	store, closeStore, err := openStore(cfg, logr)
	if err != nil {
		return err
	}
	defer closeStore()

	var observed repository.Store = store
	if cfg.Metrics.Enabled {
		observed = repository.NewInstrumentedStore(store, metrics)
	}

	validator := service.NewValidator()
	resources := service.NewResources(observed, validator, logr)

	smsService := service.NewSMSService(resources, sms.New(cfg.SMS, logr), validator, service.SMSConfig{
		SchoolName: cfg.School.Name,
		Workers:    cfg.SMS.Workers,
		MaxRetries: cfg.SMS.Retries,
	}, logr)
	smsService.Start(ctx)
	defer smsService.Stop()

	files, err := storage.NewLocalStorage(cfg.Storage.Dir, cfg.Storage.MaxUploadBytes)
	if err != nil {
		return fmt.Errorf("init attachment storage: %w", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Storage.SignedURLSecret, cfg.Storage.SignedURLTTL)

	holidays := service.NewHolidayService(resources.Holidays, logr)

	deps := handler.Dependencies{
		Resources:   resources,
		Holidays:    holidays,
		SMS:         smsService,
		AdmitCards:  service.NewAdmitCardService(resources, nil, cfg.School.Name, logr),
		Attachments: service.NewNoticeAttachmentService(resources.Notices, files, signer, logr),
		Metrics:     metrics,
		Tokens: service.NewTokenService(service.TokenConfig{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			Expiration: cfg.JWT.Expiration,
		}),
		Audit:  service.NewAuditService(observed, logr),
		Store:  store,
		Logger: logr,
	}

	if cfg.RateLimit.Enabled || cfg.Cache.Enabled {
		client, err := ratelimit.NewRedis(cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close() //nolint:errcheck

		if cfg.RateLimit.Enabled {
			deps.Limiter = ratelimit.NewLimiter(client, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		}
		if cfg.Cache.Enabled {
			cache := service.NewCacheService(repository.NewCacheRepository(client), metrics, cfg.Cache.TTL, logr)
			holidays.UseCache(cache, resources.Sessions)
		}
	}

	router := handler.NewRouter(handler.RouterConfig{
		APIPrefix:      cfg.APIPrefix,
		EnableDocs:     cfg.Env != config.EnvProduction,
		EnableMetrics:  cfg.Metrics.Enabled,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Auth:           middleware.AuthConfig{Enabled: cfg.JWT.Enabled, CookieName: cfg.JWT.CookieName},
		UploadMaxBytes: cfg.Storage.MaxUploadBytes,
	}, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(cfg *config.Config, logr *zap.Logger) (repository.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logr.Warn("using in-memory store; data is lost on restart")
		return repository.NewMemoryStore(), func() {}, nil
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := database.RunMigrations(db.DB, logr); err != nil {
				db.Close() //nolint:errcheck
				return nil, nil, err
			}
		}
		return repository.NewPostgresStore(db), func() { db.Close() }, nil //nolint:errcheck
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

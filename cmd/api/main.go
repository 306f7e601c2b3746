package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/podoclinic/booking/internal/audit"
	"github.com/podoclinic/booking/internal/cache"
	"github.com/podoclinic/booking/internal/config"
	dbpkg "github.com/podoclinic/booking/internal/db"
	infraRepo "github.com/podoclinic/booking/internal/infra/repository"
	"github.com/podoclinic/booking/internal/jobs"
	"github.com/podoclinic/booking/internal/notify"
	"github.com/podoclinic/booking/internal/routes"
	"github.com/podoclinic/booking/internal/timezone"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)
	loc := timezone.Location(cfg.Timezone)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	logger.Info().Msg("connected to database")

	// ======================================================
	// 🌱 SEED
	// ======================================================
	if cfg.SeedCatalog {
		if seeded, err := dbpkg.SeedCatalog(db); err != nil {
			logger.Error().Err(err).Msg("catalog seed failed")
		} else if seeded {
			logger.Info().Msg("starter catalog seeded")
		}
	}
	if _, err := dbpkg.SeedSettings(db); err != nil {
		logger.Error().Err(err).Msg("settings seed failed")
	}

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	settingsRepo := infraRepo.NewSettingsGormRepository(db)

	var catalogCache cache.Cache = cache.Noop{}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(cfg.RedisURL, cfg.CatalogCacheTTL)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			logger.Warn().Err(err).Msg("redis unreachable; catalog cache disabled")
			_ = rc.Close()
		} else {
			catalogCache = rc
			defer rc.Close()
			logger.Info().Dur("ttl", cfg.CatalogCacheTTL).Msg("catalog cache enabled")
		}
		cancel()
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	var mailer notify.Mailer
	defaultFrom := ""
	if cfg.MailEnabled() {
		mailer = notify.NewMailgunMailer(cfg.MailgunDomain, cfg.MailgunAPIKey)
		defaultFrom = "noreply@" + cfg.MailgunDomain
	} else {
		logger.Warn().Msg("MAILGUN_DOMAIN/MAILGUN_API_KEY not set; e-mail notifications disabled")
	}
	notifier := notify.NewNotifier(mailer, settingsRepo, loc, defaultFrom, logger)

	// ======================================================
	// ⏰ JOBS
	// ======================================================
	scheduler := jobs.NewScheduler(loc, logger)
	if cfg.MailEnabled() {
		digest := jobs.NewDailyDigest(appointmentRepo, notifier, loc)
		if err := scheduler.Add(jobs.DailyDigestTask, cfg.DigestCron, digest.Run); err != nil {
			logger.Fatal().Err(err).Str("spec", cfg.DigestCron).Msg("invalid DIGEST_CRON")
		}
	}
	scheduler.Start()

	// ======================================================
	// 🌍 HTTP
	// ======================================================
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Log:          logger,
		Location:     loc,
		CORSOrigins:  cfg.CORSOrigins,
		Appointments: appointmentRepo,
		Catalog:      catalogRepo,
		Settings:     settingsRepo,
		Cache:        catalogCache,
		Audit:        auditDispatcher,
		AuditReader:  auditLogger,
		Notifier:     notifier,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Str("timezone", loc.String()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	scheduler.Stop(ctx)
	notifier.Close(ctx)
	auditDispatcher.Close(ctx)

	logger.Info().Msg("server stopped")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("LOG_FORMAT") == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger.Level(lvl)
}

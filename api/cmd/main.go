package main

import (
	"context"
	"log"
	"net/http"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/stagepass/core-service/internal/application/moderation"
	"github.com/stagepass/core-service/internal/application/promo"
	"github.com/stagepass/core-service/internal/application/waitlist"
	"github.com/stagepass/core-service/internal/audit"
	"github.com/stagepass/core-service/internal/config"
	rediscache "github.com/stagepass/core-service/internal/infrastructure/caching/redis"
	"github.com/stagepass/core-service/internal/infrastructure/memory"
	rabbitpub "github.com/stagepass/core-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/stagepass/core-service/internal/logger"
	"github.com/stagepass/core-service/internal/transport/http/handlers"
	appmw "github.com/stagepass/core-service/internal/transport/http/middleware"
	"github.com/stagepass/core-service/internal/transport/http/router"
)

// sysClock implements the application Clock interfaces using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server

	Publisher *rabbitpub.Publisher
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := NewApp(cfg)
	defer func() {
		if app.Publisher != nil {
			_ = app.Publisher.Close()
		}
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config) *App {
	// 1) Infrastructure
	demeritStore := memory.NewDemeritStore()
	appealStore := memory.NewAppealStore()
	settingsStore := memory.NewSettingsStore()
	waitlistStore := memory.NewWaitlistStore()
	discountStore := memory.NewDiscountStore()

	// publisher wiring
	var rabbit *rabbitpub.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: notifications will not be published")
	}

	// redis is optional: without it, rate limiting falls back to per-instance
	var limiter appmw.Limiter
	if cfg.RedisAddr != "" {
		cache := rediscache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := cache.Ping(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("redis ping failed")
		}
		limiter = cache
		zlog.Info().Str("addr", cfg.RedisAddr).Msg("redis limiter ready")
	}

	auditLog := audit.New(zlog.Logger)

	var modPub moderation.NotificationPublisher
	var wlPub waitlist.NotificationPublisher
	if rabbit != nil {
		modPub = rabbit
		wlPub = rabbit
	}

	// 2) Application
	modSvc := moderation.New(demeritStore, appealStore, settingsStore, modPub, sysClock{}, auditLog)
	wlSvc := waitlist.New(waitlistStore, wlPub, sysClock{}, auditLog)
	promoSvc := promo.New(discountStore, sysClock{}, auditLog)

	// 3) Transport
	h := router.Handlers{
		Demerits:  handlers.NewDemeritsHandler(modSvc),
		Appeals:   handlers.NewAppealsHandler(modSvc),
		Waitlist:  handlers.NewWaitlistHandler(wlSvc),
		Discounts: handlers.NewDiscountsHandler(promoSvc),
		Settings:  handlers.NewSettingsHandler(modSvc),
		Health:    handlers.NewHealthHandler(),
	}
	identity := appmw.NewIdentity(cfg.JWTSecret, cfg.JWTIssuer)

	// 4) Router
	httpHandler := router.New(h, identity, limiter, cfg)

	// 5) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		Publisher: rabbit,
	}
}

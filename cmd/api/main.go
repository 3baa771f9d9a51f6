package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-backend/internal/auth"
	"catalog-backend/internal/cache"
	"catalog-backend/internal/commissions"
	"catalog-backend/internal/config"
	"catalog-backend/internal/db"
	"catalog-backend/internal/handlers"
	"catalog-backend/internal/logging"
	"catalog-backend/internal/metadata"
	"catalog-backend/internal/metrics"
	"catalog-backend/internal/notifications"
	"catalog-backend/internal/session"
	"catalog-backend/internal/store"
	"catalog-backend/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, logCloser := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer logCloser.Close()

	metrics.MustRegister()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	objects, err := store.NewObjects(ctx, store.ObjectsConfig{
		Bucket:        cfg.StorageBucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
		PathStyle:     cfg.S3PathStyle,
	})
	if err != nil {
		logger.Error("object storage setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	st := store.NewClient(store.NewTable(cols.Links), objects)
	logger.Info("object storage ready", slog.String("bucket", cfg.StorageBucket))

	probes := map[string]handlers.Pinger{
		"mongo": handlers.PingerFunc(func(ctx context.Context) error { return client.Ping(ctx, nil) }),
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if cfg.RedisURL != "" {
			logger.Info("redis connected (url)")
		} else {
			logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		defer redisCache.Close()
		cacheStore = redisCache
		probes["redis"] = redisCache
	}

	meta := metadata.NewClient(cfg.MetadataEndpoint, logger, metadata.WithCache(cacheStore, cfg.MetadataCacheTTL()))

	verifier := auth.NewVerifier(cfg.AdminPasscode)
	if !verifier.Configured() {
		logger.Warn("admin passcode not set, admin mode disabled")
	} else if !auth.IsBcryptHash(cfg.AdminPasscode) {
		logger.Warn("admin passcode stored in plain text, use catalogctl hash-passcode")
	}

	val := validation.New()
	registry := session.NewRegistry(func(id string) *session.Session {
		return session.New(id, session.Deps{
			Store:     st,
			Metadata:  meta,
			Checker:   verifier,
			Validator: val,
			Log:       logger,
		})
	}, cfg.SessionIdle(), logger)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go registry.Run(janitorCtx, time.Minute)

	var notifier commissions.Notifier
	mailer := notifications.NewBrevoClient(notifications.BrevoConfig{
		APIKey:      cfg.BrevoAPIKey,
		SenderEmail: cfg.BrevoSenderEmail,
		SenderName:  cfg.BrevoSenderName,
		OwnerEmail:  cfg.OwnerEmail,
		Sandbox:     cfg.BrevoSandbox,
	})
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		notifier = mailer
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	}

	commissionsService := commissions.NewService(commissions.NewRepository(cols.Commissions), cfg.Timezone, notifier)
	commissionsHandler := commissions.NewHandler(commissionsService, val, logger)

	server := &handlers.Server{
		Cfg:      cfg,
		Store:    st,
		Sessions: registry,
		Val:      val,
		Log:      logger,
		Cache:    cacheStore,
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.NewRouter(server, commissionsHandler, probes),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	logger.Info("server stopped", slog.Int("sessions", registry.Len()))
}

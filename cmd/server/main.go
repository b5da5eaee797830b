package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"mentorhub/internal/audit"
	authHandler "mentorhub/internal/auth/handler"
	"mentorhub/internal/auth/otp"
	authService "mentorhub/internal/auth/service"
	adminStore "mentorhub/internal/auth/store/admin"
	"mentorhub/internal/lockout"
	moderationHandler "mentorhub/internal/moderation/handler"
	moderationService "mentorhub/internal/moderation/service"
	bannerStore "mentorhub/internal/moderation/store/banner"
	mentorStore "mentorhub/internal/moderation/store/mentor"
	userStore "mentorhub/internal/moderation/store/user"
	"mentorhub/internal/notifier"
	"mentorhub/internal/platform/config"
	"mentorhub/internal/platform/database"
	"mentorhub/internal/platform/health"
	"mentorhub/internal/platform/httpserver"
	"mentorhub/internal/platform/kafka/producer"
	"mentorhub/internal/platform/logger"
	"mentorhub/internal/platform/metrics"
	"mentorhub/internal/platform/redis"
	"mentorhub/internal/token"
	httptransport "mentorhub/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing mentorhub admin control plane",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"email_provider", cfg.Email.Provider,
	)

	m := metrics.New()
	healthHandler := health.New(cfg.Environment)

	// Persistence: PostgreSQL when configured, in-memory otherwise.
	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}

	var (
		admins  authService.AdminStore
		users   moderationService.UserStore
		mentors moderationService.MentorStore
		banners moderationService.BannerStore
	)
	var adminAccounts otp.AccountStore
	if pool != nil {
		pgAdmins := adminStore.NewPostgres(pool.DB())
		admins, adminAccounts = pgAdmins, pgAdmins
		users = userStore.NewPostgres(pool.DB())
		mentors = mentorStore.NewPostgres(pool.DB())
		banners = bannerStore.NewPostgres(pool.DB())
		healthHandler.RegisterCheck("postgres", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
		log.Info("using postgres stores")
	} else {
		memAdmins := adminStore.New()
		admins, adminAccounts = memAdmins, memAdmins
		users = userStore.New()
		mentors = mentorStore.New()
		banners = bannerStore.New()
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	// Lockout store: Redis when configured so counters survive restarts and
	// are shared between instances.
	var lockoutStore lockout.Store = lockout.NewInMemoryStore()
	redisClient, err := redis.New(cfg.RedisAddr)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		lockoutStore = lockout.NewRedisStore(redisClient.Client)
		healthHandler.RegisterCheck("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(ctx)
		})
		go recordRedisStats(redisClient)
	}
	locks, err := lockout.New(lockoutStore, lockout.WithLogger(log), lockout.WithMetrics(m))
	if err != nil {
		log.Error("lockout init failed", "error", err)
		os.Exit(1)
	}

	// Audit trail: in-memory store always; Kafka sink when brokers are set.
	auditOpts := []audit.PublisherOption{
		audit.WithAsyncBuffer(256),
		audit.WithPublisherLogger(log),
	}
	var kafkaProducer *producer.Producer
	if cfg.KafkaBrokers != "" {
		kafkaProducer, err = producer.New(producer.Config{
			Brokers:         cfg.KafkaBrokers,
			Retries:         3,
			DeliveryTimeout: 10 * time.Second,
		}, log)
		if err != nil {
			log.Error("kafka producer init failed", "error", err)
			os.Exit(1)
		}
		auditOpts = append(auditOpts, audit.WithSink(audit.NewKafkaSink(kafkaProducer, cfg.AuditTopic)))
		healthHandler.RegisterCheck("kafka", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if !kafkaProducer.Healthy(ctx) {
				return context.DeadlineExceeded
			}
			return nil
		})
	}
	auditPublisher := audit.NewPublisher(audit.NewInMemoryStore(), auditOpts...)
	defer auditPublisher.Close()

	// Outbound mail.
	sender, err := notifier.NewSenderFromConfig(cfg.Email, log)
	if err != nil {
		log.Error("email provider init failed", "error", err)
		os.Exit(1)
	}
	mail := notifier.New(sender, cfg.Email.From,
		notifier.WithLogger(log),
		notifier.WithMetrics(m),
	)

	tokens := token.NewService(cfg.JWTSigningKey, cfg.SessionTTL)

	auth := authService.NewService(
		admins,
		otp.New(adminAccounts, otp.WithTTL(cfg.OTPTTL), otp.WithLogger(log)),
		tokens,
		mail,
		authService.WithLogger(log),
		authService.WithAuditPublisher(auditPublisher),
		authService.WithMetrics(m),
		authService.WithLockout(locks),
	)
	moderation := moderationService.NewService(users, mentors, banners, mail,
		moderationService.WithLogger(log),
		moderationService.WithAuditPublisher(auditPublisher),
		moderationService.WithMetrics(m),
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Auth:       authHandler.New(auth, log, cfg.SessionTTL),
		Moderation: moderationHandler.New(moderation, log),
		Health:     healthHandler,
		Sessions:   tokens,
		Metrics:    m,
		Logger:     log,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	if kafkaProducer != nil {
		_ = kafkaProducer.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	_ = pool.Close()

	log.Info("server stopped")
}

// recordRedisStats periodically exports connection pool metrics.
func recordRedisStats(client *redis.Client) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		client.RecordPoolStats()
	}
}

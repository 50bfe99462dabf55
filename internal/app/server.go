// internal/app/server.go
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"movers-service/internal/config"
	"movers-service/internal/db"
	adminHandler "movers-service/internal/handlers/admin"
	contactHandler "movers-service/internal/handlers/contact"
	paymentHandler "movers-service/internal/handlers/payment"
	quoteHandler "movers-service/internal/handlers/quote"
	wsHandler "movers-service/internal/handlers/ws"
	"movers-service/internal/middleware"
	"movers-service/internal/pkg/jwt"
	"movers-service/internal/pkg/ratelimit"
	"movers-service/internal/pkg/validate"
	"movers-service/internal/repository/postgres"
	authUsecase "movers-service/internal/service/auth"
	contactUsecase "movers-service/internal/service/contact"
	"movers-service/internal/service/email"
	paymentUsecase "movers-service/internal/service/payment"
	quoteUsecase "movers-service/internal/service/quote"
	"movers-service/internal/ws"
	"movers-service/migrations"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for goose
	"github.com/pressly/goose/v3"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer(cfg config.AppConfig) *Server {
	return &Server{cfg: cfg, engine: gin.New()}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := pgxpool.New(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	logger.Info("database connection established")

	// ----- Migrations -----
	if err := runMigrations(s.cfg.DatabaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// ----- Validation field names -----
	validate.RegisterTagNames()

	// ----- Stripe -----
	sc := &client.API{}
	sc.Init(s.cfg.StripeSecretKey, nil)

	// ----- JWT Manager -----
	tokens := jwt.NewManager(s.cfg.JWT)

	// ----- Event hub -----
	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	// ----- Notifier -----
	var quoteNotifier quoteUsecase.Notifier
	var contactNotifier contactUsecase.Notifier
	if s.cfg.SMTPHost != "" {
		sender := email.NewSender(
			s.cfg.SMTPHost,
			s.cfg.SMTPPort,
			s.cfg.SMTPUser,
			s.cfg.SMTPPass,
			s.cfg.SMTPFromName,
			s.cfg.SMTPSecure,
		)
		internalTo := s.cfg.InternalTo
		if internalTo == "" {
			internalTo = s.cfg.SMTPUser
		}
		notifications := email.NewNotifications(sender, internalTo, s.cfg.SMTPFromName)
		quoteNotifier = notifications
		contactNotifier = notifications
	} else {
		logger.Info("SMTP not configured, notifications will be logged only")
		logNotifier := &email.LogNotifier{Logger: logger}
		quoteNotifier = logNotifier
		contactNotifier = logNotifier
	}

	// ----- Repositories -----
	quoteRepo := postgres.NewQuoteRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)

	// ----- Services -----
	quoteService := quoteUsecase.NewQuoteService(quoteRepo, quoteNotifier, hub, logger)
	contactService := contactUsecase.NewContactService(contactRepo, contactNotifier, hub, logger)
	paymentService := paymentUsecase.NewPaymentService(sc.PaymentIntents, logger)
	authService := authUsecase.NewAuthService(adminRepo, tokens, logger)

	// ----- Seed admin -----
	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := authService.EnsureAdmin(seedCtx, s.cfg.AdminEmail, s.cfg.AdminPassword, s.cfg.AdminName); err != nil {
		logger.Error("failed to seed admin account", zap.Error(err))
		// Public endpoints still work without an admin account.
	}

	// ----- Handlers -----
	quoteHandlerInst := quoteHandler.NewQuoteHandler(quoteService)
	contactHandlerInst := contactHandler.NewContactHandler(contactService)
	paymentHandlerInst := paymentHandler.NewPaymentHandler(paymentService)
	adminHandlerInst := adminHandler.NewAdminHandler(authService, quoteService, contactService)
	wsHandlerInst := wsHandler.NewWSHandler(hub, tokens, logger)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.AllowedOrigins),
	)

	// Submission throttling is optional; the limiter only exists when
	// redis is configured.
	var submitLimit gin.HandlerFunc
	if s.cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			PoolSize: 10,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("redis connection established")
		limiter := ratelimit.NewLimiter(redisClient, 20, 15*time.Minute)
		submitLimit = middleware.RateLimitMiddleware(limiter, logger)
	}

	// ----- Router -----
	handlers := &Handlers{
		QuoteHandler:   quoteHandlerInst,
		ContactHandler: contactHandlerInst,
		PaymentHandler: paymentHandlerInst,
		AdminHandler:   adminHandlerInst,
		WSHandler:      wsHandlerInst,
		AuthMiddleware: middleware.NewAuthMiddleware(authService),
		SubmitLimit:    submitLimit,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// runMigrations applies any pending schema migrations through goose,
// using the database/sql pgx driver goose requires.
func runMigrations(databaseURL string) error {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open sql connection: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(sqlDB, ".")
}

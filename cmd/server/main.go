package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/habitatmx/realestate-api/docs" // swagger docs

	"github.com/habitatmx/realestate-api/internal/api"
	"github.com/habitatmx/realestate-api/internal/api/middleware"
	"github.com/habitatmx/realestate-api/internal/auth"
	"github.com/habitatmx/realestate-api/internal/core/service"
	"github.com/habitatmx/realestate-api/internal/infrastructure/config"
	mongodb "github.com/habitatmx/realestate-api/internal/infrastructure/db/mongo"
	redisdb "github.com/habitatmx/realestate-api/internal/infrastructure/db/redis"
	"github.com/habitatmx/realestate-api/internal/infrastructure/mail"
	"github.com/habitatmx/realestate-api/pkg/logger"
)

// @title        Habitat MX Real Estate API
// @version      1.0
// @description  Marketing-site and back-office API: properties, FAQs, inquiries, appointment booking and the admin workflow behind them.
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
// @description  Type "Bearer" followed by a space and the session token.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// No logger yet: signing material and store addresses are
		// prerequisites for everything else.
		panic(err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// Repositories.
	accountRepo := mongodb.NewAccountRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	inquiryRepo := mongodb.NewInquiryRepository(db)
	faqRepo := mongodb.NewFAQRepository(db)

	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account indexes failed")
	}
	if err := appointmentRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("appointment indexes failed")
	}
	if err := propertyRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("property indexes failed")
	}

	// Collaborators.
	tokens := auth.NewTokenService(cfg.JWTSecret, auth.SessionTTL)
	mailer := mail.NewMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	listingCache := redisdb.NewListingCache(rdb, log)

	// Services.
	authService := service.NewAuthService(accountRepo, tokens, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, mailer, log)
	propertyService := service.NewPropertyService(propertyRepo, listingCache, log)
	inquiryService := service.NewInquiryService(inquiryRepo, mailer, cfg.AlertEmail, log)
	faqService := service.NewFAQService(faqRepo)

	e := api.NewRouter(api.Dependencies{
		Mongo:        db,
		Redis:        rdb,
		Tokens:       tokens,
		Auth:         authService,
		Appointments: appointmentService,
		Properties:   propertyService,
		Inquiries:    inquiryService,
		FAQs:         faqService,
		LoginLimiter: middleware.NewLoginLimiter(cfg.LoginRateMax, cfg.LoginRateWindow),
		Logger:       log,
		Production:   cfg.Production(),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"teampulse-backend/internal/api/httpapi"
	"teampulse-backend/internal/config"
	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/repository/postgres"
	"teampulse-backend/internal/security"
	"teampulse-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting TeamPulse backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	quotaService := service.NewQuotaService(store.MembershipRepository, cfg.Quota.MembersPerOrg, cfg.Quota.OrgsPerUser)
	emailService := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	membershipService := service.NewMembershipService(
		store.OrganizationRepository,
		store.MembershipRepository,
		store.PresenceRepository,
		quotaService,
	)
	authService := service.NewAuthService(store.UserRepository, tokenManager, membershipService)
	inviteService := service.NewInviteService(
		store.OrganizationRepository,
		store.MembershipRepository,
		store.PresenceRepository,
		quotaService,
		emailService,
		cfg.Invite.BaseURL,
	)
	presenceService := service.NewPresenceService(store.PresenceRepository)
	notificationService := service.NewNotificationService(
		store.NotificationRepository,
		store.MembershipRepository,
		store.UserRepository,
	)

	handlers := &httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authService),
		Membership:   httpapi.NewMembershipHandler(membershipService),
		Invite:       httpapi.NewInviteHandler(inviteService),
		Presence:     httpapi.NewPresenceHandler(presenceService),
		Notification: httpapi.NewNotificationHandler(notificationService),
		AuthMW:       httpapi.NewAuthMiddleware(authService),
	}

	router := httpapi.NewRouter(handlers)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}

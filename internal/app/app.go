package app

import (
	"fmt"
	"time"

	"contacts_backend/database"
	"contacts_backend/internal/auth"
	"contacts_backend/internal/config"
	"contacts_backend/internal/email"
	"contacts_backend/internal/handlers"
	"contacts_backend/internal/imageprocessor"
	"contacts_backend/internal/logger"
	"contacts_backend/internal/middleware"
	"contacts_backend/internal/repositories"
	"contacts_backend/internal/routes"
	"contacts_backend/internal/services"
	"contacts_backend/internal/storage"
	"contacts_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Split from Run so tests
// can stand up the whole HTTP stack against their own database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailProvider := initializeEmailProvider(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	contactRepo := repositories.NewContactRepository(gormDB)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	authService := services.NewAuthService(userRepo, emailProvider, tokens)
	userService := services.NewUserService(userRepo)
	contactService := services.NewContactService(contactRepo)
	avatarService := services.NewAvatarService(
		userRepo,
		storageInstance,
		imageprocessor.NewProcessor(cfg.Upload.ImageQuality),
		cfg.Upload.AvatarSize,
		cfg.Upload.MaxSize,
	)

	v := validator.New()
	base := handlers.NewBaseHandler(v)
	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(base, authService),
		UserHandler:    handlers.NewUserHandler(base, userService, avatarService),
		ContactHandler: handlers.NewContactHandler(base, contactService),
	}

	ginRouter := initializeGinRouter()

	staticDir := ""
	if cfg.Storage.Type == "local" {
		staticDir = cfg.Storage.BasePath
	}
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(tokens, userRepo), staticDir)

	return ginRouter
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, verification mails will be logged only")
		return email.NoopProvider{}
	}

	smtpConfig := &email.SMTPConfig{
		Host:          cfg.Email.SMTPHost,
		Port:          cfg.Email.SMTPPort,
		Username:      cfg.Email.SMTPUsername,
		Password:      cfg.Email.SMTPPassword,
		FromEmail:     cfg.Email.FromEmail,
		FromName:      cfg.Email.FromName,
		VerifyBaseURL: cfg.Server.BaseURL,
	}
	if err := smtpConfig.Validate(); err != nil {
		logger.Fatal("Invalid SMTP configuration", "error", err)
	}
	return email.NewSMTPProvider(smtpConfig, email.NewTemplateManager())
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

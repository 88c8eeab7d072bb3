package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sonna_backend/internal/auth"
	"sonna_backend/internal/config"
	"sonna_backend/internal/database"
	"sonna_backend/internal/email"
	"sonna_backend/internal/handlers"
	"sonna_backend/internal/logger"
	"sonna_backend/internal/middleware"
	"sonna_backend/internal/models"
	"sonna_backend/internal/repositories"
	"sonna_backend/internal/routes"
	"sonna_backend/internal/services"
	"sonna_backend/internal/storage"
	"sonna_backend/internal/validator"
)

// Run loads configuration, connects to the database, wires the
// application layers and starts the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all routes and middleware
// wired. Split from Run so tests can build an engine without starting
// a listener.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokens, err := auth.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		time.Duration(cfg.JWT.TTLDays)*24*time.Hour,
	)
	if err != nil {
		logger.Fatal("Failed to initialize token manager", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, tokens)
	appHandlers := handlers.NewAppHandlers(validator.New(), serviceContainer)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	uploadsDir := ""
	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		uploadsDir = local.BasePath()
	}
	routes.RegisterRoutes(router, appHandlers, tokens, uploadsDir)

	return router
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage, tokens *auth.TokenManager) *services.ServiceContainer {
	smtpConfig := &email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
		UseTLS:   cfg.Email.UseTLS,
	}

	var emailProvider email.Provider
	if smtpConfig.IsConfigured() {
		emailProvider = email.NewSMTPProvider(smtpConfig)
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NewMockProvider()
		logger.Warn("SMTP is not configured, email notifications will be logged only")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	projectRepo := repositories.NewProjectRepository(gormDB)
	contentRepo := repositories.NewContentRepository(gormDB)
	settingRepo := repositories.NewSettingRepository(gormDB)

	notifier := services.NewNotificationService(emailProvider, cfg.Email.FromEmail, cfg.Email.AdminEmail)
	fileService := services.NewFileService(storageInstance, services.UploadConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	})
	authService := services.NewAuthService(userRepo, tokens, notifier, cfg.Admin.SetupToken)
	userService := services.NewUserService(userRepo, projectRepo, fileService, notifier)
	contentService := services.NewContentService(contentRepo, userRepo, projectRepo, settingRepo, fileService)

	return &services.ServiceContainer{
		AuthService:    authService,
		UserService:    userService,
		ContentService: contentService,
		Notifier:       notifier,
		FileService:    fileService,
	}
}

// seedFirstAdmin creates the bootstrap administrator account when the
// configured admin email is not yet present. Without it the
// register-admin endpoint has no one to hand the setup token to.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("Admin email or password not configured. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	fullName := cfg.Admin.FullName
	if fullName == "" {
		fullName = "Administrator"
	}

	admin := &models.User{
		FullName:     fullName,
		Email:        adminEmail,
		PhoneNumber:  cfg.Admin.Phone,
		PasswordHash: hash,
		UserType:     models.UserTypeAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}

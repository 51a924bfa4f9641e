package app

import (
	"errors"
	"fmt"
	"time"

	"aegis_backend/database"
	"aegis_backend/internal/auth"
	"aegis_backend/internal/config"
	"aegis_backend/internal/email"
	"aegis_backend/internal/handlers"
	"aegis_backend/internal/logger"
	"aegis_backend/internal/middleware"
	"aegis_backend/internal/models"
	"aegis_backend/internal/repositories"
	"aegis_backend/internal/routes"
	"aegis_backend/internal/services"
	"aegis_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа приложением управлять нечем, сервер не поднимаем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полностью сконфигурированный gin.Engine.
// Вынесен отдельно, чтобы интеграционные тесты могли поднять роутер
// без реального сервера.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	emailProvider := initializeEmailProvider(cfg)

	serviceContainer, guard := initializeServices(cfg, gormDB, emailProvider)
	appHandlers := handlers.NewAppHandlers(serviceContainer, guard, validator.New())

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host is not configured, outgoing email is disabled")
		return nil
	}

	renderer, err := email.NewHTMLRenderer()
	if err != nil {
		logger.Fatal("Failed to initialize email templates", "error", err)
	}

	smtpCfg := email.DefaultConfig()
	smtpCfg.Host = cfg.Email.SMTPHost
	if cfg.Email.SMTPPort != 0 {
		smtpCfg.Port = cfg.Email.SMTPPort
	}
	smtpCfg.Username = cfg.Email.SMTPUsername
	smtpCfg.Password = cfg.Email.SMTPPassword
	smtpCfg.FromEmail = cfg.Email.FromEmail
	smtpCfg.FromName = cfg.Email.FromName

	return email.NewSMTPProvider(smtpCfg, renderer)
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, emailProvider email.Provider) (*services.ServiceContainer, *middleware.AuthGuard) {
	userRepo := repositories.NewUserRepository(gormDB)
	serviceRepo := repositories.NewServiceRepository(gormDB)
	bookingRepo := repositories.NewBookingRepository(gormDB)
	appointmentRepo := repositories.NewAppointmentRepository(gormDB)
	contactRepo := repositories.NewContactRepository(gormDB)
	partnerRepo := repositories.NewPartnerRepository(gormDB)
	careerRepo := repositories.NewCareerRepository(gormDB)

	tokens := auth.NewTokenManager(cfg.JWT.Secret)
	guard := middleware.NewAuthGuard(tokens, userRepo, cfg.Auth.LegacySkipPasswordCheck)

	container := &services.ServiceContainer{
		AuthService:        services.NewAuthService(cfg, userRepo, tokens, emailProvider),
		CatalogService:     services.NewCatalogService(serviceRepo),
		BookingService:     services.NewBookingService(bookingRepo, serviceRepo),
		AppointmentService: services.NewAppointmentService(appointmentRepo),
		LeadService:        services.NewLeadService(cfg, contactRepo, partnerRepo, careerRepo, emailProvider),
		EmailService:       emailProvider,
	}

	return container, guard
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Email.FrontendURL))
	return router
}

// seedFirstAdmin создает первого администратора, если он еще не заведен
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("Admin email or password is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	changedAt := time.Now().Add(-time.Second)
	newAdmin := &models.User{
		Name:              name,
		Email:             adminEmail,
		PasswordHash:      hashedPassword,
		PasswordChangedAt: &changedAt,
		Role:              models.UserRoleAdmin,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}

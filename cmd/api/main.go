package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Portal-api/internal/application/auth"
	"github.com/jhoicas/Portal-api/internal/application/usecase"
	"github.com/jhoicas/Portal-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Portal-api/internal/interfaces/http"
	"github.com/jhoicas/Portal-api/pkg/config"
	"github.com/jhoicas/Portal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Sin clave de firma no hay sesiones: condición fatal de arranque.
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET no está definido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	navigationRepo := postgres.NewNavigationRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	themeRepo := postgres.NewThemeRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.SuperuserCompanyID, log)
	navigationUC := usecase.NewNavigationUseCase(navigationRepo, cfg.Auth)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo, employeeRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	directoryUC := usecase.NewDirectoryUseCase(contactRepo)
	themeUC := usecase.NewThemeUseCase(themeRepo)
	subscriptionUC := usecase.NewSubscriptionUseCase(subscriptionRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		NavigationUC:   navigationUC,
		CompanyUC:      companyUC,
		UserUC:         userUC,
		NotificationUC: notificationUC,
		DirectoryUC:    directoryUC,
		ThemeUC:        themeUC,
		SubscriptionUC: subscriptionUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

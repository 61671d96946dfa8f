package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-api/internal/application/auth"
	"github.com/jhoicas/Portal-api/internal/application/usecase"
	"github.com/jhoicas/Portal-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	NavigationUC   *usecase.NavigationUseCase
	CompanyUC      *usecase.CompanyUseCase
	UserUC         *usecase.UserUseCase
	NotificationUC *usecase.NotificationUseCase
	DirectoryUC    *usecase.DirectoryUseCase
	ThemeUC        *usecase.ThemeUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	navigationHandler := NewNavigationHandler(deps.NavigationUC, deps.Log)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	portalHandler := NewPortalHandler(deps.NotificationUC, deps.DirectoryUC, deps.ThemeUC, deps.SubscriptionUC, deps.Log)

	// Público
	api.Post("/auth/login", authHandler.Login)
	api.Post("/check-subscription", portalHandler.CheckSubscription)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Navegación
	protected.Get("/modules", navigationHandler.Modules)
	protected.Get("/menus", navigationHandler.Menus)

	// Empresa
	protected.Get("/company", companyHandler.Active)
	protected.Get("/companies-for-user", companyHandler.ListForUser)
	protected.Post("/user/switch-company", authHandler.SwitchCompany)

	// Usuarios
	protected.Post("/users", userHandler.Create)
	protected.Put("/users/change-password", authHandler.ChangePassword)
	protected.Get("/active-employees", userHandler.ActiveEmployees)

	// Portal
	protected.Get("/notifications", portalHandler.Notifications)
	protected.Put("/notifications/read", portalHandler.MarkNotificationRead)
	protected.Get("/contact-directory", portalHandler.ContactDirectory)
	protected.Get("/theme", portalHandler.Theme)
	protected.Get("/themes", portalHandler.Themes)
	protected.Post("/user/theme", portalHandler.SelectTheme)
}

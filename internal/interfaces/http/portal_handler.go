package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/application/usecase"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/pkg/logger"
)

// PortalHandler funcionalidad de apoyo del portal: notificaciones, directorio
// de contactos, temas y estado de suscripción.
type PortalHandler struct {
	notifications *usecase.NotificationUseCase
	directory     *usecase.DirectoryUseCase
	themes        *usecase.ThemeUseCase
	subscription  *usecase.SubscriptionUseCase
	log           *logger.Logger
}

// NewPortalHandler construye el handler del portal.
func NewPortalHandler(
	notifications *usecase.NotificationUseCase,
	directory *usecase.DirectoryUseCase,
	themes *usecase.ThemeUseCase,
	subscription *usecase.SubscriptionUseCase,
	log *logger.Logger,
) *PortalHandler {
	return &PortalHandler{
		notifications: notifications,
		directory:     directory,
		themes:        themes,
		subscription:  subscription,
		log:           log,
	}
}

// Notifications lista la bandeja de la sesión.
// @Summary  Notificaciones del usuario
// @Tags     portal
// @Produce  json
// @Security BearerAuth
// @Success  200  {array}  dto.NotificationResponse
// @Router   /api/notifications [get]
func (h *PortalHandler) Notifications(c *fiber.Ctx) error {
	out, err := h.notifications.List(c.Context(), GetSession(c))
	if err != nil {
		return internalError(c, h.log, "/api/notifications", err)
	}
	return c.JSON(out)
}

// MarkNotificationRead marca una notificación como leída.
// @Summary  Marcar notificación como leída
// @Tags     portal
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body  body  dto.MarkNotificationReadRequest  true  "notification_id"
// @Success  200   {object}  dto.MessageResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Router   /api/notifications/read [put]
func (h *PortalHandler) MarkNotificationRead(c *fiber.Ctx) error {
	var in dto.MarkNotificationReadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NotificationID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "notification_id es requerido"})
	}
	if err := h.notifications.MarkRead(c.Context(), GetSession(c), in.NotificationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificación no encontrada o sin permiso"})
		}
		return internalError(c, h.log, "/api/notifications/read", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Notificación marcada como leída"})
}

// ContactDirectory lista el directorio de la empresa activa.
// @Summary  Directorio de contactos
// @Tags     portal
// @Produce  json
// @Security BearerAuth
// @Success  200  {array}  dto.ContactResponse
// @Failure  403  {object}  dto.ErrorResponse
// @Router   /api/contact-directory [get]
func (h *PortalHandler) ContactDirectory(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess.CompanyID == 0 {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "sin empresa asociada a la sesión"})
	}
	out, err := h.directory.List(c.Context(), sess)
	if err != nil {
		return internalError(c, h.log, "/api/contact-directory", err)
	}
	return c.JSON(out)
}

// Theme devuelve el tema aplicado al usuario.
// @Summary  Tema del usuario (o default)
// @Tags     portal
// @Produce  json
// @Security BearerAuth
// @Success  200  {object}  dto.ThemeResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/theme [get]
func (h *PortalHandler) Theme(c *fiber.Ctx) error {
	out, err := h.themes.Current(c.Context(), GetSession(c).UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_THEME", Message: "no hay tema configurado"})
		}
		return internalError(c, h.log, "/api/theme", err)
	}
	return c.JSON(out)
}

// Themes lista los temas disponibles.
// @Summary  Temas disponibles
// @Tags     portal
// @Produce  json
// @Security BearerAuth
// @Success  200  {array}  dto.ThemeListItem
// @Router   /api/themes [get]
func (h *PortalHandler) Themes(c *fiber.Ctx) error {
	out, err := h.themes.List(c.Context())
	if err != nil {
		return internalError(c, h.log, "/api/themes", err)
	}
	return c.JSON(out)
}

// SelectTheme guarda la preferencia de tema del usuario.
// @Summary  Elegir tema
// @Tags     portal
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body  body  dto.SelectThemeRequest  true  "theme_id"
// @Success  200   {object}  dto.MessageResponse
// @Router   /api/user/theme [post]
func (h *PortalHandler) SelectTheme(c *fiber.Ctx) error {
	var in dto.SelectThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ThemeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "theme_id es requerido"})
	}
	if err := h.themes.Select(c.Context(), GetSession(c).UserID, in.ThemeID); err != nil {
		return internalError(c, h.log, "/api/user/theme", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Tema actualizado exitosamente"})
}

// CheckSubscription estado de la suscripción (endpoint público).
// @Summary  Estado de suscripción del portal
// @Tags     portal
// @Produce  json
// @Success  200  {object}  dto.SubscriptionResponse
// @Router   /api/check-subscription [post]
func (h *PortalHandler) CheckSubscription(c *fiber.Ctx) error {
	out, err := h.subscription.Check(c.Context())
	if err != nil {
		return internalError(c, h.log, "/api/check-subscription", err)
	}
	return c.JSON(out)
}

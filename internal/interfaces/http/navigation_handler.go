package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/application/usecase"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/pkg/logger"
)

// NavigationHandler expone el árbol de navegación visible para la sesión.
type NavigationHandler struct {
	uc  *usecase.NavigationUseCase
	log *logger.Logger
}

// NewNavigationHandler construye el handler de navegación.
func NewNavigationHandler(uc *usecase.NavigationUseCase, log *logger.Logger) *NavigationHandler {
	return &NavigationHandler{uc: uc, log: log}
}

// Modules godoc
// @Summary      Módulos visibles para la sesión
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ModuleResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/modules [get]
func (h *NavigationHandler) Modules(c *fiber.Ctx) error {
	sess := GetSession(c)
	h.log.Debug().
		Int64("user_id", sess.UserID).
		Str("role", sess.Role.String()).
		Int64("company_id", sess.CompanyID).
		Msg("listando módulos")

	modules, err := h.uc.ListModules(c.Context(), sess)
	if err != nil {
		return internalError(c, h.log, "/api/modules", err)
	}
	return c.JSON(modules)
}

// Menus godoc
// @Summary      Menús y submenús visibles de un módulo
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Param        moduleId  query  int  true  "ID del módulo"
// @Success      200  {array}   dto.MenuResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/menus [get]
func (h *NavigationHandler) Menus(c *fiber.Ctx) error {
	moduleID, err := strconv.ParseInt(c.Query("moduleId"), 10, 64)
	if err != nil || moduleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "moduleId es requerido"})
	}
	menus, err := h.uc.ListMenus(c.Context(), GetSession(c), moduleID)
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: "acceso denegado al módulo"})
		}
		return internalError(c, h.log, "/api/menus", err)
	}
	return c.JSON(menus)
}

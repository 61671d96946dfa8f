package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/application/usecase"
	"github.com/jhoicas/Portal-api/internal/domain"
	"github.com/jhoicas/Portal-api/pkg/logger"
)

// CompanyHandler consultas de empresa scopeadas por la sesión.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	log *logger.Logger
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *usecase.CompanyUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// Active godoc
// @Summary      Nombre de la empresa activa de la sesión
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ActiveCompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company [get]
func (h *CompanyHandler) Active(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess.CompanyID == 0 {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "sin empresa asociada a la sesión"})
	}
	out, err := h.uc.ActiveCompany(c.Context(), sess)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "empresa no encontrada"})
		}
		return internalError(c, h.log, "/api/company", err)
	}
	return c.JSON(out)
}

// ListForUser godoc
// @Summary      Empresas a las que la sesión puede cambiar
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.CompanyResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies-for-user [get]
func (h *CompanyHandler) ListForUser(c *fiber.Ctx) error {
	out, err := h.uc.ListForSession(c.Context(), GetSession(c))
	if err != nil {
		return internalError(c, h.log, "/api/companies-for-user", err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/pkg/logger"
)

// internalError registra el fallo de almacén con contexto (endpoint, usuario,
// empresa) y responde un 500 genérico. El detalle nunca llega al cliente.
func internalError(c *fiber.Ctx, log *logger.Logger, endpoint string, err error) error {
	sess := GetSession(c)
	log.Error().
		Err(err).
		Str("endpoint", endpoint).
		Int64("user_id", sess.UserID).
		Int64("company_id", sess.CompanyID).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

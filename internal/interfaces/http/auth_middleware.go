package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Portal-api/internal/application/dto"
	"github.com/jhoicas/Portal-api/internal/domain/entity"
	"github.com/jhoicas/Portal-api/internal/domain/session"
	"github.com/jhoicas/Portal-api/pkg/jwt"
)

// localSession key del contexto de sesión en Fiber Locals.
const localSession = "session"

// AuthMiddleware valida el Bearer Token y deja el contexto de sesión en Locals.
//
// Dos clases de fallo distintas, y los clientes dependen de la diferencia:
//   - 401 MISSING_TOKEN: no se presentó credencial alguna.
//   - 403 INVALID_TOKEN: se presentó una credencial y fue rechazada
//     (firma inválida o token expirado).
//
// El rol se normaliza aquí, una única vez; aguas abajo solo circulan las
// constantes de entity.Role. Verificar no renueva el token.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(localSession, session.Context{
			UserID:    claims.UserID,
			Name:      claims.Name,
			Role:      entity.ParseRole(claims.Role),
			CompanyID: claims.CompanyID,
		})
		return c.Next()
	}
}

// GetSession devuelve el contexto de sesión (después del middleware de auth).
func GetSession(c *fiber.Ctx) session.Context {
	if v, ok := c.Locals(localSession).(session.Context); ok {
		return v
	}
	return session.Context{}
}

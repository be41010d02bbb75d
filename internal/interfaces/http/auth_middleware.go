package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/badassgarage/inventory-api/internal/application/dto"
	"github.com/badassgarage/inventory-api/pkg/jwt"
)

// Locals keys para SessionID y Email en Fiber.
const (
	LocalSessionID = "session_id"
	LocalEmail     = "email"
)

// SessionChecker resuelve si una sesión sigue autorizada. Lo implementa el
// auth.Service: el token solo prueba que el Access Gate autorizó la sesión en
// su momento; la sesión además debe existir en el registro del proceso.
type SessionChecker interface {
	Authorized(sessionID string) bool
}

// AuthMiddleware valida el Bearer Token JWT, verifica la sesión contra el
// gate y extrae SessionID y Email a c.Locals.
func AuthMiddleware(jwtSecret string, sessions SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sessionID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if sessions != nil && !sessions.Authorized(sessionID) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_NOT_AUTHORIZED", Message: "la sesión no está autorizada"})
		}
		c.Locals(LocalSessionID, sessionID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetSessionID devuelve el SessionID del contexto (después del middleware de auth).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el Email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/badassgarage/inventory-api/internal/application/auth"
	"github.com/badassgarage/inventory-api/internal/application/dto"
	"github.com/badassgarage/inventory-api/internal/domain"
)

// AuthHandler maneja el login contra el Access Gate.
type AuthHandler struct {
	svc *auth.Service
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Sin validación local de email/password: esa política es del verificador.
	out, err := h.svc.Login(c.UserContext(), in)
	if err != nil {
		if ae, ok := domain.AsAuthError(err); ok {
			// La razón del verificador viaja textual hasta el usuario.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: ae.Reason})
		}
		switch {
		case errors.Is(err, domain.ErrAuthInFlight):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "AUTH_IN_FLIGHT", Message: err.Error()})
		case errors.Is(err, domain.ErrTooManyAttempts):
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "TOO_MANY_ATTEMPTS", Message: err.Error()})
		case errors.Is(err, domain.ErrVerifierUnavailable):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrVerifierUnavailable.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

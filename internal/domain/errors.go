package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrItemNotFound         = errors.New("artículo no encontrado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrAuthInFlight         = errors.New("ya hay una verificación de credenciales en curso")
	ErrAlreadyAuthenticated = errors.New("la sesión ya está autenticada")
	ErrTooManyAttempts      = errors.New("demasiados intentos de inicio de sesión")
	ErrSessionClosed        = errors.New("la sesión fue cerrada")
	ErrVerifierUnavailable  = errors.New("servicio de verificación de credenciales no disponible")
	ErrEditorUnavailable    = errors.New("servicio de edición no disponible")
)

// ValidationError error al construir una entidad: un campo violó un invariante.
// La construcción falla completa; nunca queda una entidad parcialmente válida.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Message)
}

// AuthError fallo de credenciales reportado por el verificador externo.
// Reason se propaga textualmente hasta el usuario, sin reescribir.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "autenticación fallida: " + e.Reason
}

// AsAuthError devuelve el *AuthError si err lo es (directo o envuelto).
func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

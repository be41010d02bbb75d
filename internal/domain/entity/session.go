package entity

import "time"

// Session contexto de autorización de un usuario frente al catálogo.
// Nace no autorizada; solo el Access Gate la marca como autorizada tras una
// verificación externa exitosa. No se modela sign-out en este alcance.
type Session struct {
	ID              string
	Email           string
	Authorized      bool
	CredentialError *string // transitorio: razón del último fallo de credenciales
	CreatedAt       time.Time
}

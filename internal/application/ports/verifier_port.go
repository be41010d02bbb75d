package ports

import "context"

// Identity identidad mínima que devuelve el verificador tras un sign-in exitoso.
type Identity struct {
	UserID string
	Email  string
}

// CredentialVerifier define el puerto de salida hacia el servicio externo de
// identidad. El Access Gate es su único consumidor. Contratos de error:
//   - credenciales rechazadas  -> *domain.AuthError con la razón del verificador
//   - verificador inalcanzable -> domain.ErrVerifierUnavailable (u otro error,
//     que el gate trata igual: misma transición, razón genérica)
//
// La validación de formato de email/password pertenece al verificador, no al
// cliente; aquí no se duplica esa política.
type CredentialVerifier interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
}

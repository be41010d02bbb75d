package verifier

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/badassgarage/inventory-api/internal/application/ports"
	"github.com/badassgarage/inventory-api/internal/domain"
)

// RazonCredencialesInvalidas razón devuelta ante email o password incorrectos.
// Deliberadamente una sola razón para ambos casos: no se revela si el email
// existe.
const RazonCredencialesInvalidas = "credenciales inválidas"

// User credencial sembrada para el verificador local.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
}

// Local verificador de credenciales en memoria para operación standalone y
// desarrollo. Compara con bcrypt contra una lista sembrada al arranque. No es
// el proveedor de identidad "real": implementa el mismo puerto que el cliente
// HTTP y es intercambiable por configuración.
type Local struct {
	byEmail map[string]User
}

// NewLocal construye el verificador con los usuarios dados.
func NewLocal(users []User) *Local {
	m := make(map[string]User, len(users))
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.New().String()
		}
		m[strings.ToLower(u.Email)] = u
	}
	return &Local{byEmail: m}
}

// NewLocalFromPlain siembra un único usuario desde password en texto plano
// (solo desarrollo: el hash se calcula al arranque).
func NewLocalFromPlain(email, password string) (*Local, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return NewLocal([]User{{Email: email, PasswordHash: string(hash)}}), nil
}

// SignIn verifica email/password. Credenciales incorrectas devuelven
// *domain.AuthError con razón uniforme; aquí no hay modo "inalcanzable".
func (l *Local) SignIn(ctx context.Context, email, password string) (*ports.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, ok := l.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, &domain.AuthError{Reason: RazonCredencialesInvalidas}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, &domain.AuthError{Reason: RazonCredencialesInvalidas}
	}
	return &ports.Identity{UserID: u.ID, Email: u.Email}, nil
}

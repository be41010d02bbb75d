package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/badassgarage/inventory-api/internal/application/ports"
	"github.com/badassgarage/inventory-api/internal/domain"
	"github.com/badassgarage/inventory-api/internal/domain/entity"
)

// State estado del Access Gate de una sesión.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Gate máquina de estados de autorización de una sesión. Es la única autoridad
// que marca la sesión como autorizada; ningún otro componente escribe ese flag.
//
// Transiciones:
//
//	Unauthenticated --Submit--> Authenticating
//	Authenticating  --éxito---> Authenticated (terminal en este alcance)
//	Authenticating  --fallo---> Failed(reason)
//	Failed          --Submit--> Authenticating (reintento; limpia la razón previa)
//
// Invariante: a lo sumo una verificación de credenciales en vuelo por sesión.
// Un Submit mientras otro está en curso se rechaza con domain.ErrAuthInFlight,
// nunca se lanzan dos llamadas concurrentes al verificador.
type Gate struct {
	mu       sync.Mutex
	verifier ports.CredentialVerifier
	limiter  *rate.Limiter // nil = sin throttling

	state   State
	reason  string
	session entity.Session
	gen     uint64 // sube en Teardown; descarta resultados tardíos de sesiones cerradas
	closed  bool
}

// NewGate crea el gate con una sesión nueva, no autorizada.
// limiter puede ser nil si no se quiere limitar los intentos.
func NewGate(verifier ports.CredentialVerifier, limiter *rate.Limiter) *Gate {
	return &Gate{
		verifier: verifier,
		limiter:  limiter,
		state:    StateUnauthenticated,
		session: entity.Session{
			ID:        uuid.New().String(),
			CreatedAt: time.Now(),
		},
	}
}

// Submit envía las credenciales al verificador externo y resuelve la transición.
// No valida email ni password localmente: esa política pertenece al verificador.
// Errores:
//   - domain.ErrAuthInFlight         ya hay una verificación en curso
//   - domain.ErrAlreadyAuthenticated la sesión ya quedó autorizada
//   - domain.ErrSessionClosed        la sesión fue cerrada (el resultado se descarta)
//   - domain.ErrTooManyAttempts      rechazado por el limitador de intentos
//   - *domain.AuthError              credenciales rechazadas; Reason textual del verificador
func (g *Gate) Submit(ctx context.Context, email, password string) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return domain.ErrSessionClosed
	}
	switch g.state {
	case StateAuthenticating:
		g.mu.Unlock()
		return domain.ErrAuthInFlight
	case StateAuthenticated:
		g.mu.Unlock()
		return domain.ErrAlreadyAuthenticated
	}
	if g.limiter != nil && !g.limiter.Allow() {
		g.state = StateFailed
		g.reason = domain.ErrTooManyAttempts.Error()
		g.setCredentialError(g.reason)
		g.mu.Unlock()
		return domain.ErrTooManyAttempts
	}
	g.state = StateAuthenticating
	g.reason = ""
	g.session.CredentialError = nil
	gen := g.gen
	g.mu.Unlock()

	// Llamada bloqueante fuera del lock; el estado Authenticating ya rechaza
	// cualquier Submit concurrente.
	ident, err := g.verifier.SignIn(ctx, email, password)

	g.mu.Lock()
	defer g.mu.Unlock()

	// Sesión cerrada mientras la verificación estaba en vuelo: el resultado
	// tardío se descarta, no debe voltear el estado de una sesión muerta.
	if g.closed || g.gen != gen {
		return domain.ErrSessionClosed
	}

	if err != nil {
		g.state = StateFailed
		if ae, ok := domain.AsAuthError(err); ok && ae.Reason != "" {
			g.reason = ae.Reason
		} else {
			// Verificador caído u otro fallo de colaborador: misma transición,
			// razón genérica.
			g.reason = domain.ErrVerifierUnavailable.Error()
		}
		g.setCredentialError(g.reason)
		return err
	}

	g.state = StateAuthenticated
	g.reason = ""
	g.session.Authorized = true
	g.session.CredentialError = nil
	if ident != nil {
		g.session.Email = ident.Email
	}
	return nil
}

// Teardown cierra la sesión (ej. el usuario navegó fuera mientras se
// autenticaba). Cualquier resultado del verificador que llegue después se
// descarta sin tocar el estado.
func (g *Gate) Teardown() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.gen++
}

// State estado actual del gate.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Reason razón del último fallo; vacía fuera del estado Failed.
func (g *Gate) Reason() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reason
}

// Session copia por valor de la sesión; el flag Authorized solo lo escribe
// este gate.
func (g *Gate) Session() entity.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

func (g *Gate) setCredentialError(reason string) {
	r := reason
	g.session.CredentialError = &r
}

package auth_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/badassgarage/inventory-api/internal/application/auth"
	"github.com/badassgarage/inventory-api/internal/application/ports"
	"github.com/badassgarage/inventory-api/internal/domain"
)

// fakeVerifier verificador controlable desde el test: cuenta llamadas, puede
// bloquearse hasta que el test lo libere y responde según lo programado.
type fakeVerifier struct {
	calls atomic.Int64
	block chan struct{} // si no es nil, SignIn espera aquí
	ident *ports.Identity
	err   error
}

func (f *fakeVerifier) SignIn(ctx context.Context, email, password string) (*ports.Identity, error) {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.ident != nil {
		return f.ident, nil
	}
	return &ports.Identity{UserID: "u-1", Email: email}, nil
}

func TestGate_EstadoInicial_NoAutorizado(t *testing.T) {
	gate := auth.NewGate(&fakeVerifier{}, nil)

	assert.Equal(t, auth.StateUnauthenticated, gate.State())
	sess := gate.Session()
	assert.False(t, sess.Authorized)
	assert.Nil(t, sess.CredentialError)
	assert.NotEmpty(t, sess.ID)
}

func TestGate_SubmitExitoso_TransicionaAAuthenticated(t *testing.T) {
	gate := auth.NewGate(&fakeVerifier{}, nil)

	err := gate.Submit(context.Background(), "op@garage.test", "secreta123")
	require.NoError(t, err)

	assert.Equal(t, auth.StateAuthenticated, gate.State())
	sess := gate.Session()
	assert.True(t, sess.Authorized, "solo el gate voltea Authorized, y debe hacerlo aquí")
	assert.Equal(t, "op@garage.test", sess.Email)
	assert.Empty(t, gate.Reason())
}

func TestGate_CredencialesRechazadas_RazonTextual(t *testing.T) {
	v := &fakeVerifier{err: &domain.AuthError{Reason: "bad credentials"}}
	gate := auth.NewGate(v, nil)

	err := gate.Submit(context.Background(), "op@garage.test", "mala")
	require.Error(t, err)

	assert.Equal(t, auth.StateFailed, gate.State())
	assert.Equal(t, "bad credentials", gate.Reason(),
		"la razón del verificador se pasa sin reescribir")
	sess := gate.Session()
	assert.False(t, sess.Authorized)
	require.NotNil(t, sess.CredentialError)
	assert.Equal(t, "bad credentials", *sess.CredentialError)
}

func TestGate_VerificadorCaido_RazonGenerica(t *testing.T) {
	v := &fakeVerifier{err: domain.ErrVerifierUnavailable}
	gate := auth.NewGate(v, nil)

	err := gate.Submit(context.Background(), "op@garage.test", "x")
	require.Error(t, err)

	// Colaborador inalcanzable: misma transición que un fallo de credenciales,
	// con razón genérica.
	assert.Equal(t, auth.StateFailed, gate.State())
	assert.Equal(t, domain.ErrVerifierUnavailable.Error(), gate.Reason())
}

func TestGate_ReintentoTrasFallo_LimpiaRazonYAutoriza(t *testing.T) {
	v := &fakeVerifier{err: &domain.AuthError{Reason: "bad credentials"}}
	gate := auth.NewGate(v, nil)

	require.Error(t, gate.Submit(context.Background(), "op@garage.test", "mala"))
	require.Equal(t, auth.StateFailed, gate.State())

	// Segundo intento con credenciales correctas.
	v.err = nil
	require.NoError(t, gate.Submit(context.Background(), "op@garage.test", "buena"))

	assert.Equal(t, auth.StateAuthenticated, gate.State())
	assert.Empty(t, gate.Reason(), "el reintento debe limpiar la razón previa")
	assert.Nil(t, gate.Session().CredentialError)
}

// Invariante central: nunca dos verificaciones en vuelo para la misma sesión.
func TestGate_SubmitConcurrente_SoloUnaLlamadaAlVerificador(t *testing.T) {
	v := &fakeVerifier{block: make(chan struct{})}
	gate := auth.NewGate(v, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- gate.Submit(context.Background(), "op@garage.test", "secreta123")
		}()
	}

	// Dar tiempo a que ambos goroutines lleguen al gate y liberar al que entró.
	time.Sleep(50 * time.Millisecond)
	close(v.block)
	wg.Wait()
	close(errs)

	var inFlight, ok int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrAuthInFlight):
			inFlight++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "exactamente un Submit debe completar")
	assert.Equal(t, 1, inFlight, "el otro debe rechazarse con ErrAuthInFlight")
	assert.Equal(t, int64(1), v.calls.Load(), "el verificador debe recibir una sola llamada")
}

func TestGate_SubmitTrasAutenticado_SeRechaza(t *testing.T) {
	gate := auth.NewGate(&fakeVerifier{}, nil)
	require.NoError(t, gate.Submit(context.Background(), "op@garage.test", "secreta123"))

	err := gate.Submit(context.Background(), "op@garage.test", "secreta123")
	assert.ErrorIs(t, err, domain.ErrAlreadyAuthenticated,
		"Authenticated es terminal en este alcance")
}

// La sesión se cierra con la verificación en vuelo: el resultado tardío se
// descarta y no voltea el estado de la sesión muerta.
func TestGate_TeardownDuranteAuthenticating_DescartaResultado(t *testing.T) {
	v := &fakeVerifier{block: make(chan struct{})}
	gate := auth.NewGate(v, nil)

	done := make(chan error, 1)
	go func() {
		done <- gate.Submit(context.Background(), "op@garage.test", "secreta123")
	}()

	// Esperar a que el gate entre en Authenticating y cerrar la sesión.
	require.Eventually(t, func() bool {
		return gate.State() == auth.StateAuthenticating
	}, time.Second, 5*time.Millisecond)
	gate.Teardown()

	// Ahora el verificador responde con éxito... demasiado tarde.
	close(v.block)
	err := <-done

	assert.ErrorIs(t, err, domain.ErrSessionClosed)
	assert.False(t, gate.Session().Authorized,
		"un resultado tardío no debe autorizar una sesión cerrada")
}

func TestGate_SubmitTrasTeardown_SeRechaza(t *testing.T) {
	v := &fakeVerifier{}
	gate := auth.NewGate(v, nil)
	gate.Teardown()

	err := gate.Submit(context.Background(), "op@garage.test", "secreta123")
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
	assert.Equal(t, int64(0), v.calls.Load())
}

func TestGate_LimitadorAgotado_FailedConRazonFija(t *testing.T) {
	v := &fakeVerifier{err: &domain.AuthError{Reason: "bad credentials"}}
	// 1 intento disponible, sin recarga apreciable durante el test.
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	gate := auth.NewGate(v, limiter)

	require.Error(t, gate.Submit(context.Background(), "op@garage.test", "mala"))

	err := gate.Submit(context.Background(), "op@garage.test", "mala")
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
	assert.Equal(t, auth.StateFailed, gate.State())
	assert.Equal(t, domain.ErrTooManyAttempts.Error(), gate.Reason())
	assert.Equal(t, int64(1), v.calls.Load(), "el intento limitado no debe llegar al verificador")
}

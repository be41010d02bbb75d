package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/badassgarage/inventory-api/internal/application/dto"
	"github.com/badassgarage/inventory-api/internal/application/ports"
	"github.com/badassgarage/inventory-api/internal/domain"
	"github.com/badassgarage/inventory-api/internal/domain/entity"
	"github.com/badassgarage/inventory-api/pkg/jwt"
	"github.com/badassgarage/inventory-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RateConfig limitador de intentos de login (por proceso).
// AttemptsPerMinute <= 0 desactiva el throttling.
type RateConfig struct {
	AttemptsPerMinute int
	Burst             int
}

// Service caso de uso de autenticación: arma un Gate por sesión, lo conduce
// hasta Authenticated o Failed y emite el JWT de la sesión autorizada.
// Mantiene el registro de sesiones vivas; nada fuera del Gate escribe el
// flag Authorized.
type Service struct {
	verifier ports.CredentialVerifier
	jwtCfg   JWTConfig
	limiter  *rate.Limiter
	log      *logger.Logger

	mu       sync.Mutex
	sessions map[string]entity.Session
}

// NewService construye el caso de uso de auth.
func NewService(verifier ports.CredentialVerifier, jwtCfg JWTConfig, rateCfg RateConfig, log *logger.Logger) *Service {
	var limiter *rate.Limiter
	if rateCfg.AttemptsPerMinute > 0 {
		burst := rateCfg.Burst
		if burst <= 0 {
			burst = rateCfg.AttemptsPerMinute
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rateCfg.AttemptsPerMinute)), burst)
	}
	return &Service{
		verifier: verifier,
		jwtCfg:   jwtCfg,
		limiter:  limiter,
		log:      log,
		sessions: make(map[string]entity.Session),
	}
}

// Login crea una sesión nueva y somete las credenciales al verificador a
// través del Gate. Si la sesión quedó autorizada genera el token; si no,
// devuelve el error del gate (la razón queda en el propio error).
func (s *Service) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	gate := NewGate(s.verifier, s.limiter)

	if err := gate.Submit(ctx, in.Email, in.Password); err != nil {
		// Si el contexto murió con la verificación en vuelo, la sesión se
		// abandona: un resultado tardío no debe resucitarla.
		if errors.Is(ctx.Err(), context.Canceled) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			gate.Teardown()
		}
		s.log.Warn().Str("state", gate.State().String()).Str("reason", gate.Reason()).Msg("login rechazado")
		return nil, err
	}

	sess := gate.Session()
	token, err := jwt.Generate(s.jwtCfg.Secret, sess.ID, sess.Email, s.jwtCfg.Issuer, s.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.log.Info().Str("session_id", sess.ID).Msg("sesión autorizada")
	return &dto.LoginResponse{Token: token, SessionID: sess.ID, Email: sess.Email}, nil
}

// Authorized indica si la sesión existe y fue autorizada por su gate.
func (s *Service) Authorized(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	return ok && sess.Authorized
}

// Session devuelve la sesión registrada, o domain.ErrNotFound.
func (s *Service) Session(sessionID string) (entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return entity.Session{}, domain.ErrNotFound
	}
	return sess, nil
}

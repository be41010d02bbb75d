package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/badassgarage/inventory-api/internal/application/ports"
	"github.com/badassgarage/inventory-api/internal/domain"
)

// HTTPClient cliente del servicio externo de identidad: POST {base}/signin con
// email/password. Cualquier fallo de red o respuesta no interpretable se
// reporta como domain.ErrVerifierUnavailable; el Access Gate lo convierte en
// Failed con razón genérica.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient construye el cliente del verificador remoto.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Message string `json:"message"` // razón del rechazo en respuestas no-2xx
}

// SignIn delega la verificación al servicio remoto.
//   - 2xx              -> identidad
//   - 401/403          -> *domain.AuthError con el message del servicio, textual
//   - resto / red caída -> domain.ErrVerifierUnavailable
func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*ports.Identity, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/signin", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVerifierUnavailable, err)
	}
	defer resp.Body.Close()

	var out signInResponse
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("%w: respuesta ilegible: %v", domain.ErrVerifierUnavailable, err)
		}
		return &ports.Identity{UserID: out.UserID, Email: out.Email}, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Message == "" {
			out.Message = RazonCredencialesInvalidas
		}
		return nil, &domain.AuthError{Reason: out.Message}
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrVerifierUnavailable, resp.StatusCode)
	}
}

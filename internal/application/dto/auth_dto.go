package dto

// LoginRequest entrada para login: email + password en texto plano, sin
// validación local de formato (esa política es del verificador externo).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT de la sesión autorizada.
type LoginResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
}

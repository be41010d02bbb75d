package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Auth    AuthConfig
	Editor  EditorConfig
	Catalog CatalogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig verificador de credenciales y throttling de intentos.
// Mode "local" usa el verificador bcrypt en memoria (desarrollo/standalone);
// "http" delega en el servicio de identidad remoto de VerifierURL.
type AuthConfig struct {
	Mode              string
	VerifierURL       string
	LocalEmail        string // usuario sembrado en modo local
	LocalPassword     string
	AttemptsPerMinute int // <= 0 desactiva el limitador
}

// EditorConfig colaborador editor de items. Con AMQPURL vacío los edit
// intents solo se registran en el log.
type EditorConfig struct {
	AMQPURL    string
	Exchange   string
	RoutingKey string
}

// CatalogConfig origen del snapshot de inventario.
type CatalogConfig struct {
	SeedFile string // vacío = inventario de muestra
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "garage-inventory"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "garage-inventory"),
		},
		Auth: AuthConfig{
			Mode:              getString(v, "AUTH_MODE", "local"),
			VerifierURL:       getString(v, "AUTH_VERIFIER_URL", ""),
			LocalEmail:        getString(v, "AUTH_LOCAL_EMAIL", "admin@garage.local"),
			LocalPassword:     getString(v, "AUTH_LOCAL_PASSWORD", ""),
			AttemptsPerMinute: getInt(v, "AUTH_ATTEMPTS_PER_MINUTE", 10),
		},
		Editor: EditorConfig{
			AMQPURL:    getString(v, "EDITOR_AMQP_URL", ""),
			Exchange:   getString(v, "EDITOR_AMQP_EXCHANGE", "inventory.edits"),
			RoutingKey: getString(v, "EDITOR_AMQP_ROUTING_KEY", "inventory.edit.requested"),
		},
		Catalog: CatalogConfig{
			SeedFile: getString(v, "CATALOG_SEED_FILE", ""),
		},
	}

	if cfg.Auth.Mode != "local" && cfg.Auth.Mode != "http" {
		return nil, fmt.Errorf("AUTH_MODE inválido: %q (local|http)", cfg.Auth.Mode)
	}
	if cfg.Auth.Mode == "http" && cfg.Auth.VerifierURL == "" {
		return nil, fmt.Errorf("AUTH_VERIFIER_URL es requerido con AUTH_MODE=http")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	domainerrors "github.com/Tomas-vilte/RepoPulse/internal/domain/errors"
)

// Config reúne toda la configuración del proceso. Se construye una sola vez
// en el arranque y se pasa explícitamente; ningún paquete lee el entorno por
// su cuenta.
type Config struct {
	Port                   int      `toml:"port"`
	GitHubToken            string   `toml:"github_token"`
	GeminiAPIKey           string   `toml:"gemini_api_key"`
	GeminiModel            string   `toml:"gemini_model"`
	AllowedOrigins         []string `toml:"allowed_origins"`
	UpstreamTimeoutSeconds int      `toml:"upstream_timeout_seconds"`
}

const (
	defaultPort            = 8000
	defaultGeminiModel     = "gemini-1.5-flash"
	defaultUpstreamTimeout = 30
)

// Load arma la configuración con defaults, le aplica el archivo TOML si existe
// y por último las variables de entorno, que siempre ganan.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:                   defaultPort,
		GeminiModel:            defaultGeminiModel,
		AllowedOrigins:         []string{"http://localhost:3000"},
		UpstreamTimeoutSeconds: defaultUpstreamTimeout,
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, domainerrors.NewNotConfiguredError("config", "cannot decode "+path+": "+err.Error())
		}
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("GITHUB_TOKEN")); v != "" {
		cfg.GitHubToken = v
	}
	if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.UpstreamTimeoutSeconds = seconds
		}
	}
}

func validate(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return domainerrors.NewNotConfiguredError("config", "port must be between 1 and 65535")
	}
	if cfg.GeminiModel == "" {
		return domainerrors.NewNotConfiguredError("config", "gemini_model cannot be empty")
	}
	if cfg.UpstreamTimeoutSeconds < 1 {
		return domainerrors.NewNotConfiguredError("config", "upstream_timeout_seconds must be positive")
	}
	return nil
}

// UpstreamTimeout es el límite por llamada a servicios externos.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

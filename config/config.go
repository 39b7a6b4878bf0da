package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config armazena todas as configurações do servidor Lua Nova Estoque.
type Config struct {
	// Geral
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`

	// API de produtos (backend externo)
	BackendURL     string        `envconfig:"BACKEND_URL" default:"http://localhost:3001"`
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"0s"` // 0 = sem timeout
	TimeZone       string        `envconfig:"TIMEZONE" default:"America/Sao_Paulo"`

	// Cache (Redis), usado pelo rate limiting
	RedisAddr    string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	CacheTimeout time.Duration `envconfig:"CACHE_TIMEOUT" default:"2s"`

	// Segurança (tokens CSRF assinados com JWT)
	CSRFSecretKey   string        `envconfig:"CSRF_SECRET_KEY" required:"true"`
	CSRFTokenExpiry time.Duration `envconfig:"CSRF_TOKEN_EXPIRY" default:"2h"`

	// Rate Limiting do envio do formulário
	RateLimitMaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"30"`
	RateLimitPeriod      time.Duration `envconfig:"RATE_LIMIT_PERIOD" default:"1m"`
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("falha ao ler configuração: %w", err)
	}
	if cfg.CSRFSecretKey == "" {
		return nil, errors.New("CSRF_SECRET_KEY deve ser definida")
	}
	if cfg.BackendTimeout < 0 {
		return nil, errors.New("BACKEND_TIMEOUT não pode ser negativo")
	}
	if cfg.RateLimitMaxRequests <= 0 {
		return nil, errors.New("RATE_LIMIT_MAX_REQUESTS deve ser positivo")
	}
	return &cfg, nil
}

// Location resolve o fuso horário usado para exibir datas.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// IsProduction retorna true quando o servidor roda em produção.
func (c *Config) IsProduction() bool {
	return c != nil && c.Environment == "production"
}

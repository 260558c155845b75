package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrMissingStore = errors.New("missing SUPABASE_URL or SUPABASE_SERVICE_ROLE env vars")

type Config struct {
	// StoreURL é a URL PostgreSQL do banco gerenciado.
	StoreURL        string `envconfig:"SUPABASE_URL"`
	// StoreCredential é o segredo do service role, usado como senha da
	// conexão.
	StoreCredential string `envconfig:"SUPABASE_SERVICE_ROLE"`

	ServerPort string `envconfig:"PORT" default:"3000"`
	Env        string `envconfig:"APP_ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	Timezone   string `envconfig:"TIMEZONE" default:"UTC"`

	RedisURL      string `envconfig:"REDIS_URL"`
	EventsChannel string `envconfig:"EVENTS_CHANNEL" default:"turnos:eventos"`

	AutoMigrate    bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	DBMaxOpenConns int  `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	DBMaxIdleConns int  `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

// Load lê o .env (opcional) e depois o ambiente do processo.
// As duas configurações do banco são obrigatórias e não podem ser vazias.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if strings.TrimSpace(cfg.StoreURL) == "" || strings.TrimSpace(cfg.StoreCredential) == "" {
		return nil, ErrMissingStore
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

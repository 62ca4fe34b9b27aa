package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config reúne todo lo que el proceso lee del entorno.
// Las variables EMAIL_*, DATABASE_URL y PORT son las que ya usa el despliegue actual.
type Config struct {
	Port          string        `envconfig:"PORT" default:"5000"`
	DatabaseURL   string        `envconfig:"DATABASE_URL"`
	AutoMigrate   bool          `envconfig:"AUTO_MIGRATE" default:"true"`
	StaticDir     string        `envconfig:"STATIC_DIR" default:"frontend/dist"`
	CORSOrigins   []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	AppName       string        `envconfig:"APP_NAME" default:"pet-care-booking"`
	NotifyTimeout time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`

	Email Email `envconfig:"EMAIL"`
	Log   Log   `envconfig:"LOG"`
}

type Email struct {
	Host     string `envconfig:"HOST"`
	Port     int    `envconfig:"PORT" default:"587"`
	User     string `envconfig:"USER"`
	Password string `envconfig:"PASS"`
	From     string `envconfig:"FROM"`
	To       string `envconfig:"TO"`
}

type Log struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")
	return cfg, nil
}

// Addr devuelve la dirección de escucha para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Enabled indica si hay transporte SMTP configurado.
// Sin host se usa el notificador que solo loguea.
func (e Email) Enabled() bool {
	return strings.TrimSpace(e.Host) != ""
}

// Sender arma el remitente: EMAIL_FROM o "Pet Care Orders" <EMAIL_USER>.
func (e Email) Sender() string {
	if from := strings.TrimSpace(e.From); from != "" {
		return from
	}
	return fmt.Sprintf("%q <%s>", "Pet Care Orders", strings.TrimSpace(e.User))
}

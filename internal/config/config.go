package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	LLM        LLMConfig
	Salesforce SalesforceConfig
	Audit      AuditConfig
}

type ServerConfig struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:":8080"`
}

type DBConfig struct {
	PgUser     string `env:"PGUSER"`
	PgPassword string `env:"PGPASSWORD"`
	PgHost     string `env:"PGHOST"`
	PgPort     int    `env:"PGPORT"`
	PgDatabase string `env:"PGDATABASE"`
	PgSSLMode  string `env:"PGSSLMODE"`
}

type LLMConfig struct {
	APIKey  string        `env:"OPENAI_API_KEY"`
	BaseURL string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model   string        `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT" envDefault:"30s"`
}

type SalesforceConfig struct {
	InstanceURL  string        `env:"SF_INSTANCE_URL"`
	ClientID     string        `env:"SF_CLIENT_ID"`
	ClientSecret string        `env:"SF_CLIENT_SECRET"`
	APIVersion   string        `env:"SF_API_VERSION" envDefault:"v58.0"`
	Timeout      time.Duration `env:"SF_TIMEOUT" envDefault:"30s"`
}

type AuditConfig struct {
	LogFile string `env:"AUDIT_LOG_FILE" envDefault:"chat_history.log"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := godotenv.Load(".env"); err != nil {
		panic(err)
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}

package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type R2 struct {
	AccountID  string `env:"R2_ACCOUNT_ID"`
	AccessKey  string `env:"R2_ACCESS_KEY"`
	SecretKey  string `env:"R2_SECRET_KEY"`
	BucketName string `env:"R2_BUCKET_NAME"`
	PublicURL  string `env:"R2_PUBLIC_URL" env-default:"https://media.contentflow.app"`
}

type Late struct {
	BaseURL string        `env:"LATE_BASE_URL" env-default:"https://getlate.dev/api/v1"`
	APIKey  string        `env:"LATE_API_KEY"`
	Timeout time.Duration `env:"LATE_TIMEOUT" env-default:"30s"`
}

type Gemini struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
}

type Portal struct {
	RequestsPerMinute int `env:"PORTAL_REQUESTS_PER_MINUTE" env-default:"30"`
	Burst             int `env:"PORTAL_BURST" env-default:"10"`
}

type Config struct {
	Env                string `env:"APP_ENV" env-default:"development"`
	Port               string `env:"PORT" env-default:"3000"`
	Timezone           string `env:"APP_TIMEZONE" env-default:"UTC"`
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `env:"GOOGLE_REDIRECT_URI" env-default:"http://localhost:3000/login/callback"`
	PostgresURI        string `env:"POSTGRES_URI"`
	RedisURI           string `env:"REDIS_URI" env-default:"localhost:6379"`
	FrontendURL        string `env:"FRONTEND_URL" env-default:"http://localhost:5173"`
	SentryDSN          string `env:"SENTRY_DSN"`
	SecretKey          string `env:"SECRET_KEY"`
	CookieName         string `env:"COOKIE_NAME" env-default:"contentflow_session"`
	R2                 R2
	Late               Late
	Gemini             Gemini
	Portal             Portal
}

func LoadConfig() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		log.Fatalf("Failed to read configuration: %v\n%v", err, help)
	}
	return cfg
}

// Location returns the timezone scheduled dates are interpreted in.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

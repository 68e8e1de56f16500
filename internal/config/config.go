package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	Auth     Auth     `envPrefix:"AUTH_"`
	Zarinpal Zarinpal `envPrefix:"ZARINPAL_"`
}

type Auth struct {
	// SecretKey signs and verifies bearer tokens. Injected explicitly so the
	// verifier never reads process-wide state.
	SecretKey string        `env:"SECRET_KEY,notEmpty"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

type Zarinpal struct {
	BaseApiURL  string `env:"BASE_API_URL" envDefault:"https://sandbox.zarinpal.com"`
	MerchantID  string `env:"MERCHANT_ID"`
	CallbackURL string `env:"CALLBACK_URL" envDefault:"http://localhost:8080/api/payment/verify"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

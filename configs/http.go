package configs

import "time"

type HTTP struct {
	Port            int           `env:"PORT" envDefault:"8000"`
	FrontendURL     string        `env:"FRONTEND_URL" envDefault:"*"`
	JWTSecret       string        `env:"JWT_SECRET,notEmpty"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	RateLimitPerMin int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

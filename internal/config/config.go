package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string   `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL         string   `env:"DATABASE_URL,required"`
	GeminiAPIKey        string   `env:"GEMINI_API_KEY"`
	GeminiModel         string   `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash-exp"`
	JWTSecret           string   `env:"JWT_SECRET,required"`
	JWTAccessTTLMinutes int      `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"30"`
	AllowedOrigins      []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://nila-ashy.vercel.app,http://localhost:5173,http://localhost:3000"`
	HistoryWindow       int      `env:"HISTORY_WINDOW" envDefault:"20"`
	LoginRateMax        int      `env:"LOGIN_RATE_MAX" envDefault:"10"`
	LoginRateWindowSecs int      `env:"LOGIN_RATE_WINDOW_SECONDS" envDefault:"60"`
	RedisAddr           string   `env:"REDIS_ADDR"`
	RedisPassword       string   `env:"REDIS_PASSWORD"`
	RedisDB             int      `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

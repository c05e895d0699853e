package config

import "time"

type Config struct {
	// Пустой ключ отключает проверку токена
	SecretKey string        `env:"AUTH_SECRET_KEY"`
	TokenTTL  time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
}

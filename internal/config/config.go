package config

import (
	"errors"
	"flag"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	authConfig "github.com/iurnickita/saleshub/internal/auth/config"
	handlerConfig "github.com/iurnickita/saleshub/internal/handler/config"
	loggerConfig "github.com/iurnickita/saleshub/internal/logger/config"
	serviceConfig "github.com/iurnickita/saleshub/internal/service/config"
	storeConfig "github.com/iurnickita/saleshub/internal/store/config"
)

type Config struct {
	Handler handlerConfig.Config
	Service serviceConfig.Config
	Store   storeConfig.Config
	Logger  loggerConfig.Config
	Auth    authConfig.Config
}

// GetConfig собирает конфигурацию: флаги, затем .env, затем переменные окружения.
// Переменные окружения имеют приоритет.
func GetConfig(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("saleshub", flag.ContinueOnError)
	fs.StringVar(&cfg.Handler.ServerAddr, "a", "localhost:8080", "address and port to run server")
	fs.StringVar(&cfg.Store.DBDsn, "d", "", "database connection string")
	fs.StringVar(&cfg.Logger.LogLevel, "l", "info", "log level")
	fs.StringVar(&cfg.Service.SuggestedValuesAddr, "s", "", "suggested values service address")
	fs.StringVar(&cfg.Auth.SecretKey, "k", "", "token secret key")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

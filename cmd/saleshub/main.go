package main

import (
	"log"
	"os"

	"github.com/iurnickita/saleshub/internal/auth"
	"github.com/iurnickita/saleshub/internal/config"
	"github.com/iurnickita/saleshub/internal/handler"
	"github.com/iurnickita/saleshub/internal/logger"
	"github.com/iurnickita/saleshub/internal/service"
	"github.com/iurnickita/saleshub/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.GetConfig(os.Args[1:])
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.Logger)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	store, err := store.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	auth := auth.NewAuth(cfg.Auth)
	service, err := service.NewService(cfg.Service, store, zaplog)
	if err != nil {
		return err
	}

	zaplog.Info("starting server")
	return handler.Serve(cfg.Handler, auth, service, zaplog)
}

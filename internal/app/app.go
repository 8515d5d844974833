package app

import (
	"context"
	"net/http"

	"slots_backend/internal/config"

	log "github.com/sirupsen/logrus"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.WithError(err).Warn("error loading .env file")
	}
	s.initServiceProvider()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	s.ServiceProvider.Scheduler(ctx).Start(ctx)
	defer s.ServiceProvider.Scheduler(ctx).Stop()

	log.Infof("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}

package main

import (
	"slots_backend/internal/app"

	log "github.com/sirupsen/logrus"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/api/handlers"
	"github.com/pharmassist/pharmassist-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	a.Scheduler.Start()
	a.Notifier.Start()

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("pharmassist-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}

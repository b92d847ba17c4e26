package main

import (
	"context"
	"log"
	"net/http"

	"echo-analytics/api/router"
	"echo-analytics/config"
	"echo-analytics/db"
	"echo-analytics/logger"
	"echo-analytics/schema"
)

func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	reg := schema.NewRegistry()
	r, err := router.New(reg)
	if err != nil {
		log.Fatal(err)
	}

	addr := ":" + config.GetConfig().Server.Port
	logger.Log.Infof("listening on %s", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

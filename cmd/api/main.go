package main

import (
	"context"
	"log"

	"smartx-backend/internal/bootstrap"
	"smartx-backend/internal/shared/server"
)

func main() {
	app, err := bootstrap.Build(context.Background())
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	addr := server.Addr(app.Config.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

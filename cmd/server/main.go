package main

import (
	"context"
	"log"
	"net/http"

	"ticklist/internal/config"
	"ticklist/internal/serverapp"
)

func main() {
	cfg, err := config.Load("ticklist.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	app, err := serverapp.New(serverapp.Options{
		Config:        cfg,
		UseDiskStatic: config.UseDiskStaticByEnv(),
		Logger:        log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	app.StartSeed(context.Background())

	log.Printf("listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, app.Handler))
}

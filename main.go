package main

import (
	"log"
	"time"

	"oh-server/config"
	"oh-server/di"
)

func main() {
	config.LoadEnv()

	container := di.NewContainer(config.Env())

	go container.Hub.Run()

	log.Println("[Main] Running initial catalog refresh")
	if err := container.CatalogRefresherService.RefreshCatalog(); err != nil {
		log.Printf("[Main] Initial catalog refresh failed: %v", err)
	}
	container.CatalogRefresherService.StartPeriodicJob(
		config.CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	log.Println("[Main] Starting server")
	container.StatusHttpServer.Start()

	container.PollerManager.StopAll()
}

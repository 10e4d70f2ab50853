package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"MissionControl/Assistant"
	"MissionControl/CronJobs"
	"MissionControl/FiberConfig"
	"MissionControl/Ledger"
	"MissionControl/Models"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	Models.Connect()

	cachePath := os.Getenv("CACHE_DB_PATH")
	if cachePath == "" {
		cachePath = "ledger_cache.db"
	}
	cache, err := Ledger.OpenCache(cachePath)
	if err != nil {
		log.Fatalf("failed to open ledger cache: %v", err)
	}
	defer cache.Close()

	sync := Ledger.NewSynchronizer(Ledger.OpenRemote(), cache)
	sync.Initialize(context.Background())

	refresher := CronJobs.NewLedgerRefresher(sync, 25*time.Second, false)
	if err := refresher.Start(); err != nil {
		log.Printf("Failed to start ledger refresher: %v", err)
	}
	defer refresher.Stop()

	FiberConfig.FiberConfig(sync, Assistant.NewClient())
}

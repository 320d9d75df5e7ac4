package main

import (
	"log"
	"os"

	"memberly/config"
	"memberly/db"
	"memberly/router"
	"memberly/workers"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.json"
	}
	cfg := config.Get(configPath)

	db.SetConfigurations(cfg)
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer database.Close()

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)

	// Job de cobrança: roda em background, uma vez por dia-calendário.
	workers.StartBillingWorker(database, cfg)

	log.Printf("Memberly listening on :%s", cfg.ApiPort)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal(err)
	}
}

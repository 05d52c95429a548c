package main

import (
	"log"

	"tasktrackr/config"
	"tasktrackr/models"
	"tasktrackr/routes"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		log.Fatalf("migrate db: %v", err)
	}

	r := routes.SetupRouter(db)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

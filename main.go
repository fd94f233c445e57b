package main

import (
	"fmt"
	"log"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/config"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/database"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.Log.Level)

	// init audit database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// setup router
	r := router.SetupRouter(cfg, db, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

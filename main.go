package main

import (
	"fmt"
	"log"

	"github.com/hray3182/ordering-app/configs"
	"github.com/hray3182/ordering-app/middlewares"
	"github.com/hray3182/ordering-app/pkg/logger"
	"github.com/hray3182/ordering-app/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	lg := logger.New("ordering-app")

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if cfg.SeedDemo {
		if err := configs.SeedDemo(); err != nil {
			log.Fatalf("seed demo catalog failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// serve stored menu item images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, lg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	lg.Info("startup", "server listening", "addr", addr, "db_driver", cfg.DBDriver)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

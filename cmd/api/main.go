package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vazqueztomas/barbershop/internal/config"
	dbpkg "github.com/vazqueztomas/barbershop/internal/db"
	"github.com/vazqueztomas/barbershop/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

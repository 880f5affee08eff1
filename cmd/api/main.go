package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-sousa/agenda-api/internal/config"
	dbpkg "github.com/barbearia-sousa/agenda-api/internal/db"
	"github.com/barbearia-sousa/agenda-api/internal/middleware"
	"github.com/barbearia-sousa/agenda-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

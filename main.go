package main

import (
	"log"
	"time"

	"commission-app/config"
	"commission-app/database"
	routes "commission-app/internal/app/http"
	"commission-app/internal/infra/idempotency"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	idem, err := idempotency.Open(config.IDEMPOTENCY_DB_PATH)
	if err != nil {
		log.Fatal("❌ Failed to open idempotency store: ", err)
	}
	defer idem.Close()

	if n, err := idem.Purge(time.Now().Add(-24 * time.Hour)); err != nil {
		log.Println("⚠️ Failed to purge idempotency records:", err)
	} else if n > 0 {
		log.Printf("🧹 Purged %d stale idempotency records", n)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Length", "Idempotent-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, idem)

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal(err)
	}
}

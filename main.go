package main

import (
	"context"
	"time"

	"studio-backend/config"
	"studio-backend/database"
	paymentsapi "studio-backend/internal/api/payments"
	shootsapi "studio-backend/internal/api/shoots"
	routes "studio-backend/internal/app/http"
	"studio-backend/internal/auth"
	"studio-backend/internal/drive"
	"studio-backend/internal/infra/mercadopago"
	"studio-backend/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	config.LoadEnv()
	database.InitDB()

	if err := auth.EnsureAdminExists(database.DB); err != nil {
		logrus.Fatalf("failed to ensure admin account: %v", err)
	}

	// Sessions default to the in-memory store; Redis makes them survive
	// restarts and scale across instances.
	if config.REDIS_ADDR != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.REDIS_ADDR,
			Password: config.REDIS_PASS,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		session.Use(session.NewRedisStore(rdb))
		logrus.Info("sessions stored in Redis")
	}

	shootsapi.Drive = drive.NewClient(config.GOOGLE_DRIVE_API_KEY)
	paymentsapi.Gateway = mercadopago.NewClient(config.MERCADO_PAGO_ACCESS_TOKEN)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}

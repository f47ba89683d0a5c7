package main

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"gym-backend/config"
	"gym-backend/database"
	routes "gym-backend/internal/app/http"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/infra/mail"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(config.LOG_LEVEL)})))

	catalog, err := members.LoadCatalog(config.PLAN_CATALOG)
	if err != nil {
		log.Fatal("❌ Invalid PLAN_CATALOG: ", err)
	}
	members.UseCatalog(catalog)

	database.InitDB()

	var mailer mail.Mailer = mail.LogMailer{}
	if config.MAIL_TO != "" {
		mailer = mail.New(config.RESEND_API_KEY, config.MAIL_FROM)
	} else {
		slog.Warn("MAIL_TO not set, enquiries are only logged")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.CORS_ORIGIN, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, mailer)

	slog.Info("server starting", slog.String("port", config.PORT), slog.Any("plans", catalog.PlanNames()))
	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal("❌ Server stopped: ", err)
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

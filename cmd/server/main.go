package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pici355/Match-predictory-sub000/internal/config"
	"github.com/pici355/Match-predictory-sub000/internal/database"
	"github.com/pici355/Match-predictory-sub000/internal/handlers"
	"github.com/pici355/Match-predictory-sub000/internal/middleware"
	"github.com/pici355/Match-predictory-sub000/internal/services"
	"github.com/pici355/Match-predictory-sub000/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// @title           Totocalcio Pool API
// @version         1.0
// @description     API for the football prediction pool: predictions, results, prizes and leaderboard
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}

	hub := ws.NewHub()

	authService := services.NewAuthService(db)
	matchService := services.NewMatchService(db)
	predictionService := services.NewPredictionService(db)
	prizeService := services.NewPrizeService(db)
	leaderboardService := services.NewLeaderboardService(db)
	teamService := services.NewTeamService(db)
	userService := services.NewUserService(db)
	statsService := services.NewStatsService(db)

	authHandler := handlers.NewAuthHandler(authService)
	matchHandler := handlers.NewMatchHandler(matchService, hub)
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	prizeHandler := handlers.NewPrizeHandler(prizeService, hub)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	teamHandler := handlers.NewTeamHandler(teamService, cfg.UploadDir)
	userHandler := handlers.NewUserHandler(userService)
	statsHandler := handlers.NewStatsHandler(statsService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("pool_session", store))

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/ws", wsHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", middleware.AuthRequired(), authHandler.Me)

		matches := api.Group("/matches")
		{
			matches.GET("", matchHandler.ListMatches)
			matches.GET("/:id", matchHandler.GetMatch)

			admin := matches.Group("")
			admin.Use(middleware.AuthRequired(), middleware.AdminRequired(authService))
			{
				admin.POST("", matchHandler.CreateMatch)
				admin.PUT("/:id", matchHandler.UpdateMatch)
				admin.DELETE("/:id", matchHandler.DeleteMatch)
				admin.POST("/:id/result", matchHandler.SetResult)
				admin.POST("/upload", matchHandler.UploadMatches)
			}
		}

		predictions := api.Group("/predictions")
		predictions.Use(middleware.AuthRequired())
		{
			predictions.POST("", predictionHandler.Submit)
			predictions.GET("/my", predictionHandler.ListMine)
			predictions.GET("/match/:id", predictionHandler.ListByMatch)
			predictions.GET("/day/:day", predictionHandler.ListByDay)
			predictions.DELETE("/:id", predictionHandler.Delete)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)

			admin := teams.Group("")
			admin.Use(middleware.AuthRequired(), middleware.AdminRequired(authService))
			{
				admin.POST("", teamHandler.CreateTeam)
				admin.PUT("/:id", teamHandler.UpdateTeam)
				admin.DELETE("/:id", teamHandler.DeleteTeam)
				admin.POST("/:id/logo", teamHandler.UploadLogo)
			}
		}

		users := api.Group("/users")
		users.Use(middleware.AuthRequired(), middleware.AdminRequired(authService))
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.POST("/:id/pin", userHandler.ResetPIN)
			users.PUT("/:id/admin", userHandler.SetAdmin)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		prizes := api.Group("/prizes")
		{
			prizes.GET("", prizeHandler.ListDistributions)
			prizes.GET("/my", middleware.AuthRequired(), prizeHandler.ListMyPayouts)
			prizes.GET("/:day", prizeHandler.GetDay)
			prizes.GET("/:day/payouts", prizeHandler.ListDayPayouts)
			prizes.POST("/:day/distribute",
				middleware.AuthRequired(), middleware.AdminRequired(authService),
				prizeHandler.Distribute)
		}

		api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
		api.GET("/stats", statsHandler.GetOverview)
		api.GET("/stats/day/:day", statsHandler.GetDayStats)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

package main

import (
	"log"
	"strconv"

	"quizhub/bot"
	"quizhub/config"
	"quizhub/db"
	"quizhub/routes"
	"quizhub/services"
	"quizhub/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	var cache *services.RatingCache
	if cfg.Redis.Addr != "" {
		cache, err = services.ConnectRatingCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Rating cache enabled")
	}

	services.InitScoringService(store, cache)
	services.InitLeaderboardService(store, cache)

	if cfg.Telegram.BotToken != "" {
		go func() {
			if err := bot.Run(cfg.Telegram.BotToken, cfg.Telegram.WebappURL); err != nil {
				log.Printf("Bot stopped: %v", err)
			}
		}()
	} else {
		log.Println("BOT_TOKEN is empty, bot will not be started")
	}

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openStore(cfg *config.Config) (db.Store, error) {
	switch cfg.Storage.Driver {
	case "mongo":
		store, err := db.ConnectMongoStore(cfg.Database.URI)
		if err != nil {
			return nil, err
		}
		log.Println("Connected to MongoDB")
		return store, nil
	default:
		return db.NewFileStore(cfg.Storage.Path), nil
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	origins := cfg.Server.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	// Serve the mini-app for local checks
	router.Static("/webapp", cfg.Server.WebappDir)

	api := router.Group("/api")
	{
		api.GET("/task/:id", routes.GetTaskRouteHandler)
		api.POST("/submit", routes.SubmitAnswerRouteHandler)
		api.GET("/rating", routes.GetRatingRouteHandler)
	}

	// Live leaderboard pushes
	router.GET("/ws/rating", websocket.RatingWebsocketHandler)

	return router
}

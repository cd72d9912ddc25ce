package main

import (
	"context"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stevenD18skz/impostor-app/config"
	"github.com/stevenD18skz/impostor-app/crypto"
	"github.com/stevenD18skz/impostor-app/game"
	"github.com/stevenD18skz/impostor-app/migrations"
	"github.com/stevenD18skz/impostor-app/realtime"
	"github.com/stevenD18skz/impostor-app/storage"
	"github.com/stevenD18skz/impostor-app/words"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(ctx *gin.Context) { ctx.String(200, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Authorization",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	if err := migrations.Migrate(cfg.PostgresURL); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	roomRepo, err := storage.NewPostgresRoomRepo(context.Background(), cfg.PostgresURL)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to postgres")
	}
	defer roomRepo.Close()

	tokenManager := crypto.NewJWTManager(cfg.JWTKey, cfg.SessionTokenAge)
	wordBank := words.NewBank()

	hub := realtime.NewHub()
	hubStarted := make(chan struct{})
	go hub.Run(hubStarted)
	<-hubStarted

	gameService := game.NewService(roomRepo, wordBank, hub, cfg.MinPlayersToStart)
	gameHandler := game.NewGameHandler(gameService, tokenManager)
	watchHandler := realtime.NewWatchHandler(hub, tokenManager)

	r := CreateServer(cfg.AllowedOrigins)

	{
		gameGroup := r.Group("/api/game")
		gameGroup.GET("", gameHandler.GetRoomHandler)
		gameGroup.POST("", gameHandler.ActionHandler)
		gameGroup.GET("/watch", watchHandler.WatchRoomHandler)
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("api listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

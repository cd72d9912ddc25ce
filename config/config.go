package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL       string
	JWTKey            string
	AllowedOrigins    []string
	ListenAddr        string
	MinPlayersToStart int
	SessionTokenAge   time.Duration
}

// Load reads configuration from the environment, with .env as a local
// development convenience.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		ListenAddr:        ":5000",
		MinPlayersToStart: 3,
		SessionTokenAge:   time.Hour * 24 * 7, // 7 days
	}

	postgresURL, exists := os.LookupEnv("POSTGRES_URL")
	if !exists {
		return Config{}, fmt.Errorf("missing POSTGRES_URL")
	}
	cfg.PostgresURL = postgresURL

	jwtKey, exists := os.LookupEnv("JWT_KEY")
	if !exists {
		return Config{}, fmt.Errorf("missing JWT_KEY")
	}
	cfg.JWTKey = jwtKey

	allowedOrigins, exists := os.LookupEnv("ALLOWED_ORIGINS")
	if !exists {
		return Config{}, fmt.Errorf("missing ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = strings.Split(allowedOrigins, ",")

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if raw := os.Getenv("MIN_PLAYERS_TO_START"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid MIN_PLAYERS_TO_START: %q", raw)
		}
		cfg.MinPlayersToStart = n
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl             string
	JWTSecret         string
	ServerPort        string
	Timezone          string
	AccessTokenHours  int
	ResetTokenMinutes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return &Config{
		DBUrl:             getEnv("DATABASE_URL", "barbershop.db"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		ServerPort:        getEnv("SERVER_PORT", "8000"),
		Timezone:          getEnv("BARBERSHOP_TIMEZONE", "America/Argentina/Buenos_Aires"),
		AccessTokenHours:  getEnvInt("ACCESS_TOKEN_TTL_HOURS", 24*7),
		ResetTokenMinutes: getEnvInt("RESET_TOKEN_TTL_MINUTES", 60),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

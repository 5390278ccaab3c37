package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	Port            string
	JWTSecret       string
	CORSOrigin      string
	RateLimitPerSec float64
	RateLimitBurst  int
	AppEnv          string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = ":5000"
	}

	return ENV{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		Port:            port,
		JWTSecret:       os.Getenv("JWT_SECRET"),
		CORSOrigin:      os.Getenv("CORS_ORIGIN"),
		RateLimitPerSec: envFloat("RATE_LIMIT_PER_SEC", 10),
		RateLimitBurst:  envInt("RATE_LIMIT_BURST", 100),
		AppEnv:          os.Getenv("APP_ENV"),
	}

}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

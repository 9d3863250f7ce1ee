package config

import (
	"log"
	"os"
	"strings"
	"time"

	"weather-recorder/internal/api"

	"github.com/joho/godotenv"
)

type Config struct {
	RedisURL      string
	WeatherAPIKey string
	WeatherAPIURL string
	HTTPTimeout   time.Duration
	KafkaBrokers  []string
	RecordTopic   string
	Port          string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded (ok for prod)")
	}
	return FromEnv()
}

// FromEnv reads the process environment without touching .env files.
func FromEnv() *Config {
	apiKey := os.Getenv("WEATHER_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		log.Printf("Invalid HTTP_TIMEOUT, using 10s: %v", err)
		timeout = 10 * time.Second
	}

	return &Config{
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		WeatherAPIKey: apiKey,
		WeatherAPIURL: getEnv("WEATHER_API_URL", api.DefaultWeatherURL),
		HTTPTimeout:   timeout,
		KafkaBrokers:  splitList(os.Getenv("KAFKA_BROKERS")),
		RecordTopic:   getEnv("WEATHER_KAFKA_TOPIC", "weather-records"),
		Port:          getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package bootstrap

import (
	"net/http"

	"weather-recorder/internal/api"
	"weather-recorder/internal/config"
	"weather-recorder/internal/handlers"
	"weather-recorder/internal/kafka"
	"weather-recorder/internal/repositories"
	"weather-recorder/internal/services"

	"github.com/redis/go-redis/v9"
)

type HandlersBundle struct {
	WeatherHandler *handlers.WeatherHandler
}

// InitHandlers builds the weather pipeline. producer may be nil when Kafka is not configured.
func InitHandlers(cfg *config.Config, redisClient *redis.Client, producer *kafka.Producer) *HandlersBundle {
	fetcher := api.NewWeatherClient(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.WeatherAPIURL, cfg.WeatherAPIKey)
	repo := repositories.NewWeatherRepository(redisClient)

	var publisher kafka.ProducerInterface
	if producer != nil {
		publisher = producer
	}

	return &HandlersBundle{
		WeatherHandler: handlers.NewWeatherHandler(services.NewWeatherService(fetcher, repo, publisher)),
	}
}

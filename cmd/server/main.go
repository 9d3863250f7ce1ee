package main

import (
	"context"
	"log"
	"net/http"

	"weather-recorder/internal/bootstrap"
	"weather-recorder/internal/config"
	"weather-recorder/internal/db"
	"weather-recorder/internal/kafka"
)

func main() {
	cfg := config.Load()
	if cfg.WeatherAPIKey == "" {
		log.Println("WEATHER_API_KEY not set, weather lookups will fail")
	}

	redisClient, err := db.ConnectRedis(context.Background(), cfg, 10)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var producer *kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = kafka.NewProducer(cfg.KafkaBrokers, cfg.RecordTopic)
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("Record events enabled on topic %s", producer.Topic())
	} else {
		log.Println("KAFKA_BROKERS not set, record events disabled")
	}

	bundle := bootstrap.InitHandlers(cfg, redisClient, producer)
	router := bootstrap.InitRoutes(bundle.WeatherHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	done := bootstrap.GracefulShutdown(srv, redisClient, producer)

	log.Printf("Server started on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-done
}

package bootstrap

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-recorder/internal/kafka"

	"github.com/redis/go-redis/v9"
)

// GracefulShutdown waits for SIGINT/SIGTERM, then drains the server and closes
// the clients. The returned channel is closed once cleanup has finished.
func GracefulShutdown(srv *http.Server, redisClient *redis.Client, producer *kafka.Producer) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log.Println("Shutting down gracefully...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if producer != nil {
			if err := producer.Flush(ctx); err != nil {
				log.Printf("Kafka flush error, pending record events dropped: %v", err)
			}
			producer.Close()
		}

		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Printf("Redis close error: %v", err)
			}
		}
	}()
	return done
}

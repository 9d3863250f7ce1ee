package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"

	"weather-recorder/internal/models"

	"github.com/redis/go-redis/v9"
)

var ErrRecordNotFound = errors.New("weather record not found")

type WeatherRepository struct {
	redis *redis.Client
}

func NewWeatherRepository(redis *redis.Client) *WeatherRepository {
	return &WeatherRepository{redis: redis}
}

func RecordKey(id int) string {
	return "weather:record:" + strconv.Itoa(id)
}

// Save upserts the record under its condition id. No TTL, last writer wins.
func (r *WeatherRepository) Save(ctx context.Context, record models.WeatherRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	key := RecordKey(record.ID)
	if err := r.redis.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}

	log.Printf("Weather record saved: %s (%s)", key, record.Name)
	return nil
}

func (r *WeatherRepository) Get(ctx context.Context, id int) (*models.WeatherRecord, error) {
	key := RecordKey(id)
	data, err := r.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET %s: %w", key, err)
	}

	var record models.WeatherRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", key, err)
	}
	return &record, nil
}

// List returns every stored record ordered by id. Keys that fail to decode are skipped.
func (r *WeatherRepository) List(ctx context.Context) ([]models.WeatherRecord, error) {
	var keys []string
	iter := r.redis.Scan(ctx, 0, "weather:record:*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis SCAN: %w", err)
	}

	records := make([]models.WeatherRecord, 0, len(keys))
	for _, key := range keys {
		data, err := r.redis.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("redis GET %s: %w", key, err)
		}

		var record models.WeatherRecord
		if err := json.Unmarshal(data, &record); err != nil {
			log.Printf("Skipping %s: %v", key, err)
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

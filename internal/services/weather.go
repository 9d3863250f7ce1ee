package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"weather-recorder/internal/kafka"
	"weather-recorder/internal/models"
	"weather-recorder/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrNoSnapshot       = errors.New("no weather snapshot to project")
	ErrStoreFailure     = errors.New("weather record store failure")
)

type WeatherFetcher interface {
	Fetch(ctx context.Context, city string) (models.FetchResult, error)
}

type RecordStore interface {
	Save(ctx context.Context, record models.WeatherRecord) error
	Get(ctx context.Context, id int) (*models.WeatherRecord, error)
	List(ctx context.Context) ([]models.WeatherRecord, error)
}

type WeatherService struct {
	fetcher  WeatherFetcher
	store    RecordStore
	producer kafka.ProducerInterface
	now      func() time.Time
}

// NewWeatherService wires the pipeline. producer may be nil.
func NewWeatherService(fetcher WeatherFetcher, store RecordStore, producer kafka.ProducerInterface) *WeatherService {
	return &WeatherService{
		fetcher:  fetcher,
		store:    store,
		producer: producer,
		now:      time.Now,
	}
}

// ProjectAndSave turns a found snapshot into a record and upserts it.
// A not-found result is refused instead of writing a zero-valued record.
func ProjectAndSave(ctx context.Context, store RecordStore, result models.FetchResult) (*models.WeatherRecord, error) {
	if !result.Found {
		return nil, ErrNoSnapshot
	}

	record := models.NewWeatherRecord(result.Snapshot)
	if err := store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	return &record, nil
}

func (s *WeatherService) SaveCityWeather(ctx context.Context, city string) (*models.WeatherRecord, error) {
	result, err := s.fetcher.Fetch(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("fetch weather for %q: %w", city, err)
	}
	if !result.Found {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, city)
	}

	record, err := ProjectAndSave(ctx, s.store, result)
	if err != nil {
		return nil, err
	}

	if s.producer != nil {
		s.producer.PublishObjectAsync([]byte(repositories.RecordKey(record.ID)), models.RecordEvent{
			EventID: uuid.NewString(),
			City:    city,
			SavedAt: s.now().UTC(),
			Record:  *record,
		})
	}

	return record, nil
}

func (s *WeatherService) GetRecord(ctx context.Context, id int) (*models.WeatherRecord, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			log.Printf("Failed to read weather record %d: %v", id, err)
		}
		return nil, err
	}
	return record, nil
}

func (s *WeatherService) ListRecords(ctx context.Context) ([]models.WeatherRecord, error) {
	return s.store.List(ctx)
}

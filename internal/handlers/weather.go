package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"weather-recorder/internal/models"
	"weather-recorder/internal/repositories"
	"weather-recorder/internal/services"

	"github.com/go-chi/chi/v5"
)

const (
	WelcomeText     = " Welcome to all environment !! "
	LocationMissing = "Location Not Found !!"
)

type WeatherServiceInterface interface {
	SaveCityWeather(ctx context.Context, city string) (*models.WeatherRecord, error)
	GetRecord(ctx context.Context, id int) (*models.WeatherRecord, error)
	ListRecords(ctx context.Context) ([]models.WeatherRecord, error)
}

type WeatherHandler struct {
	weatherService WeatherServiceInterface
}

func NewWeatherHandler(weatherService WeatherServiceInterface) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

func (h *WeatherHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(WelcomeText))
}

// SaveCityWeather handles GET /weather/{city}: fetch, project, store and echo the record.
func (h *WeatherHandler) SaveCityWeather(w http.ResponseWriter, r *http.Request) {
	city, err := cityParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid city name"})
		return
	}

	record, err := h.weatherService.SaveCityWeather(r.Context(), city)
	if errors.Is(err, services.ErrLocationNotFound) {
		body, _ := json.Marshal(map[string]string{"error": LocationMissing})
		writeText(w, http.StatusNotFound, cityResponse(city, body))
		return
	}
	if err != nil {
		log.Printf("Weather lookup failed for %s: %v", city, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch and save weather"})
		return
	}

	body, err := json.Marshal(record)
	if err != nil {
		log.Printf("Failed to encode record for %s: %v", city, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to encode weather record"})
		return
	}

	writeText(w, http.StatusOK, cityResponse(city, body))
}

func (h *WeatherHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "record id must be an integer"})
		return
	}

	record, err := h.weatherService.GetRecord(r.Context(), id)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read weather record"})
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *WeatherHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.weatherService.ListRecords(r.Context())
	if err != nil {
		log.Printf("Failed to list weather records: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list weather records"})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// cityParam returns the decoded city. chi matches on RawPath when it is set,
// leaving escaped reserved characters (%2F, %26, ...) in the param.
func cityParam(r *http.Request) (string, error) {
	city := chi.URLParam(r, "city")
	if r.URL.RawPath == "" {
		return city, nil
	}
	return url.PathUnescape(city)
}

func cityResponse(city string, body []byte) string {
	return fmt.Sprintf("Here is the Json for %s : %s", city, body)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

package bootstrap

import (
	"net/http"

	"weather-recorder/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func InitRoutes(weatherHandler *handlers.WeatherHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("OK"))
	})

	r.Route("/weather", func(r chi.Router) {
		r.Get("/welcome", weatherHandler.Welcome)
		r.Get("/records", weatherHandler.ListRecords)
		r.Get("/records/{id}", weatherHandler.GetRecord)
		r.Get("/{city}", weatherHandler.SaveCityWeather)
	})

	return r
}

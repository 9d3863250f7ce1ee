package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-recorder/internal/api"
	"weather-recorder/internal/models"
	"weather-recorder/internal/repositories"
	"weather-recorder/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	record  *models.WeatherRecord
	records []models.WeatherRecord
	err    error
	city   string
	id     int
}

func (s *stubService) SaveCityWeather(ctx context.Context, city string) (*models.WeatherRecord, error) {
	s.city = city
	return s.record, s.err
}

func (s *stubService) GetRecord(ctx context.Context, id int) (*models.WeatherRecord, error) {
	s.id = id
	return s.record, s.err
}

func (s *stubService) ListRecords(ctx context.Context) ([]models.WeatherRecord, error) {
	return s.records, s.err
}

func serve(svc *stubService, path string) *httptest.ResponseRecorder {
	h := NewWeatherHandler(svc)
	r := chi.NewRouter()
	r.Get("/weather/welcome", h.Welcome)
	r.Get("/weather/records", h.ListRecords)
	r.Get("/weather/records/{id}", h.GetRecord)
	r.Get("/weather/{city}", h.SaveCityWeather)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestWelcome(t *testing.T) {
	rec := serve(&stubService{}, "/weather/welcome")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, " Welcome to all environment !! ", rec.Body.String())
}

func TestSaveCityWeather_OK(t *testing.T) {
	svc := &stubService{record: &models.WeatherRecord{
		ID: 300, Name: "London", Country: "GB", Humidity: 72, WindSpeed: 3.1, Temperature: 15, WeatherDescription: "light rain",
	}}

	rec := serve(svc, "/weather/London")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "London", svc.city)
	assert.Equal(t,
		`Here is the Json for London : {"id":300,"name":"London","country":"GB","humidity":72,"windSpeed":3.1,"temperature":15,"weatherDescription":"light rain"}`,
		rec.Body.String())
}

func TestSaveCityWeather_NotFound(t *testing.T) {
	svc := &stubService{err: fmt.Errorf("%w: Nowhereville", services.ErrLocationNotFound)}

	rec := serve(svc, "/weather/Nowhereville")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `Here is the Json for Nowhereville : {"error":"Location Not Found !!"}`, rec.Body.String())
}

func TestSaveCityWeather_Failures(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("fetch: %w", api.ErrIOFailure),
		fmt.Errorf("%w: redis down", services.ErrStoreFailure),
		errors.New("anything else"),
	} {
		rec := serve(&stubService{err: err}, "/weather/London")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"failed to fetch and save weather"}`, rec.Body.String())
	}
}

func TestSaveCityWeather_DecodedCityName(t *testing.T) {
	svc := &stubService{record: &models.WeatherRecord{ID: 800, Name: "São Paulo"}}

	rec := serve(svc, "/weather/S%C3%A3o%20Paulo")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "São Paulo", svc.city)
	assert.Contains(t, rec.Body.String(), "Here is the Json for São Paulo : ")
}

func TestGetRecord(t *testing.T) {
	svc := &stubService{record: &models.WeatherRecord{ID: 800, Name: "Cairo"}}

	rec := serve(svc, "/weather/records/800")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 800, svc.id)
	assert.JSONEq(t, `{"id":800,"name":"Cairo","country":"","humidity":0,"windSpeed":0,"temperature":0,"weatherDescription":""}`, rec.Body.String())
}

func TestGetRecord_Errors(t *testing.T) {
	cases := []struct {
		path   string
		err    error
		status int
	}{
		{"/weather/records/abc", nil, http.StatusBadRequest},
		{"/weather/records/1", repositories.ErrRecordNotFound, http.StatusNotFound},
		{"/weather/records/1", errors.New("redis down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := serve(&stubService{err: tc.err}, tc.path)
		assert.Equal(t, tc.status, rec.Code, tc.path)
	}
}

func TestListRecords(t *testing.T) {
	svc := &stubService{records: []models.WeatherRecord{{ID: 300, Name: "London"}, {ID: 800, Name: "Cairo"}}}

	rec := serve(svc, "/weather/records")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"London"`)
	assert.Contains(t, rec.Body.String(), `"name":"Cairo"`)

	rec = serve(&stubService{err: errors.New("redis down")}, "/weather/records")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSaveCityWeather_ReservedCharacters(t *testing.T) {
	cases := map[string]string{
		"/weather/A%26B":     "A&B",
		"/weather/Ho%2FChi":  "Ho/Chi",
		"/weather/A%3BB":     "A;B",
		"/weather/Val%27Or":  "Val'Or",
		"/weather/100%25":    "100%",
		"/weather/A%26B%20C": "A&B C",
	}
	for path, want := range cases {
		svc := &stubService{record: &models.WeatherRecord{ID: 800}}

		rec := serve(svc, path)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, want, svc.city, path)
		assert.Contains(t, rec.Body.String(), "Here is the Json for "+want+" : ", path)
	}
}

func TestCityParam_BadEscape(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/weather/x", nil)
	req.URL.RawPath = "/weather/%zz"
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("city", "%zz")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	NewWeatherHandler(&stubService{}).SaveCityWeather(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package models

// WeatherSnapshot is a single reading for one city as returned by the upstream API.
type WeatherSnapshot struct {
	ConditionID  int     `json:"conditionId"`
	CityName     string  `json:"cityName"`
	CountryCode  string  `json:"countryCode"`
	Description  string  `json:"description"`
	TemperatureC float64 `json:"temperatureC"`
	HumidityPct  float64 `json:"humidityPct"`
	WindSpeed    float64 `json:"windSpeed"`
}

// WeatherRecord is the persisted projection of a snapshot.
// ID is the condition code and doubles as the storage key, so two cities
// sharing a condition overwrite each other.
type WeatherRecord struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Country            string  `json:"country"`
	Humidity           float64 `json:"humidity"`
	WindSpeed          float64 `json:"windSpeed"`
	Temperature        float64 `json:"temperature"`
	WeatherDescription string  `json:"weatherDescription"`
}

func NewWeatherRecord(s WeatherSnapshot) WeatherRecord {
	return WeatherRecord{
		ID:                 s.ConditionID,
		Name:               s.CityName,
		Country:            s.CountryCode,
		Humidity:           s.HumidityPct,
		WindSpeed:          s.WindSpeed,
		Temperature:        s.TemperatureC,
		WeatherDescription: s.Description,
	}
}

// FetchResult is either a found snapshot or a not-found outcome.
// Callers check Found before touching Snapshot.
type FetchResult struct {
	Found    bool
	Snapshot WeatherSnapshot
}

func Found(s WeatherSnapshot) FetchResult {
	return FetchResult{Found: true, Snapshot: s}
}

func NotFound() FetchResult {
	return FetchResult{}
}

package weather

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient направляет клиент на тестовый сервер, без Redis-кэша.
func newTestClient(server *httptest.Server) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return &Client{
		apiKey:     "test-key",
		baseURL:    server.URL,
		httpClient: server.Client(),
		logger:     logger,
	}
}

func TestKelvinToCelsius(t *testing.T) {
	tests := []struct {
		name   string
		kelvin float64
		want   int
	}{
		{"точка замерзания", 273.15, 0},
		{"плюс 27", 300.15, 27},
		{"минус 15", 258.15, -15},
		{"округление вверх", 274.75, 2},
		{"округление вниз", 274.25, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KelvinToCelsius(tt.kelvin))
		})
	}
}

func TestCurrentByCity_Success(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Shimla", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Shimla",
			"sys": {"country": "IN"},
			"main": {"temp": 275.15, "feels_like": 273.15, "humidity": 85},
			"wind": {"speed": 3.5},
			"weather": [{"description": "light snow", "icon": "13d"}],
			"dt": 1767182400
		}`))
	}))
	defer server.Close()
	client := newTestClient(server)

	// Действие
	report, err := client.CurrentByCity(context.Background(), "Shimla")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Shimla", report.Location)
	assert.Equal(t, "IN", report.Country)
	assert.Equal(t, 2, report.Temperature)
	assert.Equal(t, 0, report.FeelsLike)
	assert.Equal(t, 85, report.Humidity)
	assert.Equal(t, 3.5, report.WindSpeed)
	assert.Equal(t, "light snow", report.Description)
	assert.Equal(t, "13d", report.Icon)
	assert.Equal(t, time.Unix(1767182400, 0).UTC(), report.ObservedAt)
}

func TestCurrentByZip_DefaultsCountry(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12345,us", r.URL.Query().Get("zip"))
		w.Write([]byte(`{"name": "Schenectady", "main": {"temp": 270.15}}`))
	}))
	defer server.Close()
	client := newTestClient(server)

	// Действие
	report, err := client.CurrentByZip(context.Background(), "12345", "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, -3, report.Temperature)
}

func TestCurrent_APIError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Invalid API key"}`))
	}))
	defer server.Close()
	client := newTestClient(server)

	// Действие
	report, err := client.CurrentByCity(context.Background(), "Shimla")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "status 401")
}

func TestForecastByCoords_GroupsByDay(t *testing.T) {
	// Подготовка: шесть точек на два дня (UTC), во втором дне
	// "heavy snow" встречается чаще
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		w.Write([]byte(`{
			"city": {"name": "Shimla", "country": "IN"},
			"list": [
				{"dt": 1767182400, "main": {"temp": 268.15, "feels_like": 266.15, "humidity": 70}, "wind": {"speed": 2}, "weather": [{"description": "light snow", "icon": "13d"}]},
				{"dt": 1767193200, "main": {"temp": 271.15, "feels_like": 269.15, "humidity": 75}, "wind": {"speed": 3}, "weather": [{"description": "light snow", "icon": "13d"}]},
				{"dt": 1767204000, "main": {"temp": 270.15, "feels_like": 268.15, "humidity": 72}, "wind": {"speed": 4}, "weather": [{"description": "overcast clouds", "icon": "04d"}]},
				{"dt": 1767268800, "main": {"temp": 265.15, "feels_like": 262.15, "humidity": 90}, "wind": {"speed": 6}, "weather": [{"description": "heavy snow", "icon": "13n"}]},
				{"dt": 1767279600, "main": {"temp": 267.15, "feels_like": 264.15, "humidity": 88}, "wind": {"speed": 5}, "weather": [{"description": "heavy snow", "icon": "13d"}]},
				{"dt": 1767290400, "main": {"temp": 269.15, "feels_like": 267.15, "humidity": 80}, "wind": {"speed": 4}, "weather": [{"description": "overcast clouds", "icon": "04d"}]}
			]
		}`))
	}))
	defer server.Close()
	client := newTestClient(server)

	// Действие
	forecast, err := client.ForecastByCoords(context.Background(), 31.1048, 77.1734)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Shimla", forecast.Location)
	require.Len(t, forecast.Days, 2)

	day1 := forecast.Days[0]
	assert.Equal(t, time.Unix(1767182400, 0).UTC().Format("2006-01-02"), day1.Date)
	assert.Equal(t, -5, day1.MinTemp)
	assert.Equal(t, -2, day1.MaxTemp)
	assert.Equal(t, "light snow", day1.Description)
	assert.Equal(t, "13d", day1.Icon)
	assert.Len(t, day1.Hours, 3)

	day2 := forecast.Days[1]
	assert.Equal(t, -8, day2.MinTemp)
	assert.Equal(t, -4, day2.MaxTemp)
	assert.Equal(t, "heavy snow", day2.Description)
	// Иконка берется у первой точки с доминирующим условием
	assert.Equal(t, "13n", day2.Icon)
}

func TestForecast_EmptyList(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city": {"name": "Nowhere"}, "list": []}`))
	}))
	defer server.Close()
	client := newTestClient(server)

	// Действие
	forecast, err := client.ForecastByCoords(context.Background(), 0, 0)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, forecast.Days)
}

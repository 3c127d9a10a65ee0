package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/snowshield/snow_shield_api/internal/config"
	"github.com/snowshield/snow_shield_api/internal/models"
	"github.com/snowshield/snow_shield_api/internal/observability"
)

// Provider - контракт поставщика погодных данных.
type Provider interface {
	CurrentByCoords(ctx context.Context, lat, lon float64) (*models.WeatherReport, error)
	CurrentByCity(ctx context.Context, city string) (*models.WeatherReport, error)
	CurrentByZip(ctx context.Context, zip, country string) (*models.WeatherReport, error)
	ForecastByCoords(ctx context.Context, lat, lon float64) (*models.Forecast, error)
}

// Client реализует Provider поверх OpenWeather API с кэшированием ответов
// в Redis. API отдает температуры в Кельвинах, наружу они выходят уже в
// Цельсиях.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *logrus.Logger
	metrics     *observability.Metrics
}

// NewClient создает клиент OpenWeather.
func NewClient(cfg *config.Config, redisClient *redis.Client, logger *logrus.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey:  cfg.WeatherAPIKey,
		baseURL: cfg.WeatherBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.WeatherTimeout,
		},
		redisClient: redisClient,
		cacheTTL:    cfg.WeatherCacheTTL,
		logger:      logger,
		metrics:     metrics,
	}
}

// KelvinToCelsius переводит Кельвины в округленные Цельсии.
func KelvinToCelsius(kelvin float64) int {
	return int(math.Round(kelvin - 273.15))
}

// CurrentByCoords возвращает текущую погоду по координатам.
func (c *Client) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.WeatherReport, error) {
	params := url.Values{
		"lat": {fmt.Sprintf("%.4f", lat)},
		"lon": {fmt.Sprintf("%.4f", lon)},
	}
	return c.current(ctx, "coords", params)
}

// CurrentByCity возвращает текущую погоду по названию города.
func (c *Client) CurrentByCity(ctx context.Context, city string) (*models.WeatherReport, error) {
	params := url.Values{"q": {city}}
	return c.current(ctx, "city", params)
}

// CurrentByZip возвращает текущую погоду по почтовому индексу и коду страны.
func (c *Client) CurrentByZip(ctx context.Context, zip, country string) (*models.WeatherReport, error) {
	if country == "" {
		country = "us"
	}
	params := url.Values{"zip": {fmt.Sprintf("%s,%s", zip, country)}}
	return c.current(ctx, "zip", params)
}

func (c *Client) current(ctx context.Context, mode string, params url.Values) (*models.WeatherReport, error) {
	cacheKey := "weather:current:" + params.Encode()

	var report models.WeatherReport
	if c.fromCache(ctx, cacheKey, &report) {
		return &report, nil
	}

	var resp currentResponse
	if err := c.doRequest(ctx, "/weather", mode, params, &resp); err != nil {
		return nil, err
	}

	result := processCurrent(resp)
	c.toCache(ctx, cacheKey, result)
	return result, nil
}

// ForecastByCoords возвращает прогноз, сгруппированный по дням: границы
// температур и наиболее частое условие за день.
func (c *Client) ForecastByCoords(ctx context.Context, lat, lon float64) (*models.Forecast, error) {
	params := url.Values{
		"lat": {fmt.Sprintf("%.4f", lat)},
		"lon": {fmt.Sprintf("%.4f", lon)},
	}
	cacheKey := "weather:forecast:" + params.Encode()

	var forecast models.Forecast
	if c.fromCache(ctx, cacheKey, &forecast) {
		return &forecast, nil
	}

	var resp forecastResponse
	if err := c.doRequest(ctx, "/forecast", "forecast", params, &resp); err != nil {
		return nil, err
	}

	result := processForecast(resp)
	c.toCache(ctx, cacheKey, result)
	return result, nil
}

func (c *Client) doRequest(ctx context.Context, path, mode string, params url.Values, out any) error {
	params.Set("appid", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveWeatherAPIDuration(time.Since(start).Seconds())
	if err != nil {
		c.metrics.IncWeatherRequest(mode, "error")
		return fmt.Errorf("%s weather request: %w", mode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.IncWeatherRequest(mode, "error")
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("weather API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.IncWeatherRequest(mode, "error")
		return fmt.Errorf("decode response: %w", err)
	}

	c.metrics.IncWeatherRequest(mode, "success")
	return nil
}

// fromCache пытается прочитать закэшированный ответ. Ошибки кэша не
// фатальны - просто идем в API.
func (c *Client) fromCache(ctx context.Context, key string, out any) bool {
	if c.redisClient == nil {
		return false
	}
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("Weather cache read failed")
		}
		c.metrics.IncWeatherCache("miss")
		return false
	}
	if err := json.Unmarshal(val, out); err != nil {
		c.logger.WithError(err).Warn("Weather cache entry is corrupt")
		c.metrics.IncWeatherCache("miss")
		return false
	}
	c.metrics.IncWeatherCache("hit")
	return true
}

func (c *Client) toCache(ctx context.Context, key string, value any) {
	if c.redisClient == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redisClient.Set(ctx, key, data, c.cacheTTL).Err(); err != nil {
		c.logger.WithError(err).Warn("Weather cache write failed")
	}
}

func processCurrent(resp currentResponse) *models.WeatherReport {
	report := &models.WeatherReport{
		Location:    resp.Name,
		Country:     resp.Sys.Country,
		Temperature: KelvinToCelsius(resp.Main.Temp),
		FeelsLike:   KelvinToCelsius(resp.Main.FeelsLike),
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
		ObservedAt:  time.Unix(resp.Dt, 0).UTC(),
	}
	if len(resp.Weather) > 0 {
		report.Description = resp.Weather[0].Description
		report.Icon = resp.Weather[0].Icon
	}
	return report
}

// processForecast группирует почасовые точки по датам и строит суточные
// сводки: min/max температуры и наиболее частое условие с его иконкой.
func processForecast(resp forecastResponse) *models.Forecast {
	forecast := &models.Forecast{
		Location: resp.City.Name,
		Country:  resp.City.Country,
	}

	var order []string
	byDay := make(map[string][]models.ForecastHour)
	for _, item := range resp.List {
		t := time.Unix(item.Dt, 0).UTC()
		date := t.Format("2006-01-02")
		hour := models.ForecastHour{
			Time:        t,
			Temperature: KelvinToCelsius(item.Main.Temp),
			FeelsLike:   KelvinToCelsius(item.Main.FeelsLike),
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
		}
		if len(item.Weather) > 0 {
			hour.Description = item.Weather[0].Description
			hour.Icon = item.Weather[0].Icon
		}
		if _, seen := byDay[date]; !seen {
			order = append(order, date)
		}
		byDay[date] = append(byDay[date], hour)
	}

	for _, date := range order {
		hours := byDay[date]
		day := models.ForecastDay{
			Date:    date,
			MinTemp: hours[0].Temperature,
			MaxTemp: hours[0].Temperature,
			Hours:   hours,
		}

		counts := make(map[string]int)
		mostFrequent := hours[0].Description
		maxCount := 0
		for _, h := range hours {
			if h.Temperature < day.MinTemp {
				day.MinTemp = h.Temperature
			}
			if h.Temperature > day.MaxTemp {
				day.MaxTemp = h.Temperature
			}
			counts[h.Description]++
			if counts[h.Description] > maxCount {
				mostFrequent = h.Description
				maxCount = counts[h.Description]
			}
		}

		day.Description = mostFrequent
		for _, h := range hours {
			if h.Description == mostFrequent {
				day.Icon = h.Icon
				break
			}
		}

		forecast.Days = append(forecast.Days, day)
	}

	return forecast
}

// Типы ответов OpenWeather API.

type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main    mainBlock `json:"main"`
	Wind    windBlock `json:"wind"`
	Weather []condition `json:"weather"`
	Dt      int64       `json:"dt"`
}

type forecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Dt      int64       `json:"dt"`
		Main    mainBlock   `json:"main"`
		Wind    windBlock   `json:"wind"`
		Weather []condition `json:"weather"`
	} `json:"list"`
}

type mainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type windBlock struct {
	Speed float64 `json:"speed"`
}

type condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

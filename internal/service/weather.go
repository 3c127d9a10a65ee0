package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snowshield/snow_shield_api/internal/models"
	"github.com/snowshield/snow_shield_api/internal/risk"
	"github.com/snowshield/snow_shield_api/internal/weather"
)

// WeatherService отдает погоду вместе с оценкой лавинной опасности.
type WeatherService interface {
	CurrentByCoords(ctx context.Context, lat, lon float64) (*models.WeatherReport, risk.Assessment, error)
	CurrentByCity(ctx context.Context, city string) (*models.WeatherReport, risk.Assessment, error)
	CurrentByZip(ctx context.Context, zip, country string) (*models.WeatherReport, risk.Assessment, error)
	ForecastByCoords(ctx context.Context, lat, lon float64) (*models.Forecast, error)
}

type weatherService struct {
	provider weather.Provider
	logger   *logrus.Logger
}

func NewWeatherService(provider weather.Provider, logger *logrus.Logger) WeatherService {
	return &weatherService{
		provider: provider,
		logger:   logger,
	}
}

func (s *weatherService) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.WeatherReport, risk.Assessment, error) {
	report, err := s.provider.CurrentByCoords(ctx, lat, lon)
	return s.assess(report, err, "coords")
}

func (s *weatherService) CurrentByCity(ctx context.Context, city string) (*models.WeatherReport, risk.Assessment, error) {
	if strings.TrimSpace(city) == "" {
		return nil, risk.Assessment{}, fmt.Errorf("%w: city is required", ErrValidation)
	}
	report, err := s.provider.CurrentByCity(ctx, city)
	return s.assess(report, err, "city")
}

func (s *weatherService) CurrentByZip(ctx context.Context, zip, country string) (*models.WeatherReport, risk.Assessment, error) {
	if strings.TrimSpace(zip) == "" {
		return nil, risk.Assessment{}, fmt.Errorf("%w: zip is required", ErrValidation)
	}
	report, err := s.provider.CurrentByZip(ctx, zip, country)
	return s.assess(report, err, "zip")
}

func (s *weatherService) ForecastByCoords(ctx context.Context, lat, lon float64) (*models.Forecast, error) {
	forecast, err := s.provider.ForecastByCoords(ctx, lat, lon)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch forecast")
		return nil, fmt.Errorf("service: could not fetch forecast: %w", err)
	}
	return forecast, nil
}

func (s *weatherService) assess(report *models.WeatherReport, err error, mode string) (*models.WeatherReport, risk.Assessment, error) {
	if err != nil {
		s.logger.WithError(err).WithField("mode", mode).Error("Failed to fetch current weather")
		return nil, risk.Assessment{}, fmt.Errorf("service: could not fetch weather: %w", err)
	}
	assessment := risk.For(float64(report.Temperature), report.WindSpeed, report.Humidity)
	return report, assessment, nil
}

package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/snowshield/snow_shield_api/internal/models"
	"github.com/snowshield/snow_shield_api/internal/risk"
	. "github.com/snowshield/snow_shield_api/internal/service"
	weathermocks "github.com/snowshield/snow_shield_api/internal/weather/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWeatherService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestWeatherService(t *testing.T) (*WeatherServiceImpl, *weathermocks.MockProvider) {
	ctrl := gomock.NewController(t)
	providerMock := weathermocks.NewMockProvider(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewWeatherService(providerMock, logger)
	return service.(*WeatherServiceImpl), providerMock
}

func TestCurrentByCoords_AttachesRisk(t *testing.T) {
	// Подготовка
	service, providerMock := newTestWeatherService(t)
	ctx := context.Background()
	report := &models.WeatherReport{
		Location:    "Shimla",
		Temperature: 2,
		WindSpeed:   10,
		Humidity:    85,
	}

	// Ожидания
	providerMock.EXPECT().CurrentByCoords(ctx, 31.1048, 77.1734).Return(report, nil).Times(1)

	// Действие
	got, assessment, err := service.CurrentByCoords(ctx, 31.1048, 77.1734)

	// Проверки: теплый влажный воздух дает высокий риск мокрого снега
	require.NoError(t, err)
	assert.Equal(t, report, got)
	assert.Equal(t, risk.LevelHigh, assessment.Level)
}

func TestCurrentByCity_EmptyCity(t *testing.T) {
	// Подготовка
	service, _ := newTestWeatherService(t)

	// Действие: до провайдера дело не доходит
	got, _, err := service.CurrentByCity(context.Background(), "  ")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, got)
}

func TestCurrentByZip_ProviderError(t *testing.T) {
	// Подготовка
	service, providerMock := newTestWeatherService(t)
	ctx := context.Background()

	// Ожидания
	providerMock.EXPECT().
		CurrentByZip(ctx, "171234", "in").
		Return(nil, errors.New("upstream unavailable")).
		Times(1)

	// Действие
	got, assessment, err := service.CurrentByZip(ctx, "171234", "in")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Empty(t, assessment.Level)
}

func TestForecastByCoords_PassThrough(t *testing.T) {
	// Подготовка
	service, providerMock := newTestWeatherService(t)
	ctx := context.Background()
	forecast := &models.Forecast{
		Location: "Shimla",
		Days:     []models.ForecastDay{{Date: "2026-01-15", MinTemp: -8, MaxTemp: -2}},
	}

	// Ожидания
	providerMock.EXPECT().ForecastByCoords(ctx, 31.1048, 77.1734).Return(forecast, nil).Times(1)

	// Действие
	got, err := service.ForecastByCoords(ctx, 31.1048, 77.1734)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, forecast, got)
}

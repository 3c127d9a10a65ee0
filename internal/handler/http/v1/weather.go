package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Current weather with risk assessment
// @Description Current conditions for a point, resolved by coordinates, city name or zip code, together with a snow risk assessment.
// @Tags Weather
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lat query number false "Latitude (with lon)"
// @Param lon query number false "Longitude (with lat)"
// @Param city query string false "City name"
// @Param zip query string false "Zip code"
// @Param country query string false "ISO country code for zip lookup, defaults to us"
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} map[string]string "Missing or invalid location parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather [get]
func (h *Handler) getCurrentWeather(c *gin.Context) {
	log := h.logger.WithField("method", "getCurrentWeather")
	ctx := c.Request.Context()

	switch {
	case c.Query("lat") != "" || c.Query("lon") != "":
		lat, lon, ok := parseCoords(c)
		if !ok {
			return
		}
		report, assessment, err := h.weatherService.CurrentByCoords(ctx, lat, lon)
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ReportToWeatherResponse(report, assessment))
	case c.Query("city") != "":
		report, assessment, err := h.weatherService.CurrentByCity(ctx, c.Query("city"))
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ReportToWeatherResponse(report, assessment))
	case c.Query("zip") != "":
		report, assessment, err := h.weatherService.CurrentByZip(ctx, c.Query("zip"), c.Query("country"))
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ReportToWeatherResponse(report, assessment))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat/lon, city or zip is required"})
	}
}

// @Summary Multi-day forecast
// @Description Forecast for a point grouped by day, with per-day minimum and maximum temperatures.
// @Tags Weather
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} models.Forecast
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/forecast [get]
func (h *Handler) getForecast(c *gin.Context) {
	log := h.logger.WithField("method", "getForecast")

	lat, lon, ok := parseCoords(c)
	if !ok {
		return
	}

	forecast, err := h.weatherService.ForecastByCoords(c.Request.Context(), lat, lon)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// parseCoords разбирает lat/lon из query. При ошибке сам пишет 400 в ответ.
func parseCoords(c *gin.Context) (float64, float64, bool) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid lat and lon are required"})
		return 0, 0, false
	}
	return lat, lon, true
}

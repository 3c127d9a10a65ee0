package models

import "time"

// WeatherReport - текущая погода в нормализованном виде.
// Температуры уже переведены из Кельвинов в Цельсии.
type WeatherReport struct {
	Location    string    `json:"location"`
	Country     string    `json:"country"`
	Temperature int       `json:"temperature"`
	FeelsLike   int       `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	ObservedAt  time.Time `json:"observed_at"`
}

// ForecastHour - одна точка почасового прогноза.
type ForecastHour struct {
	Time        time.Time `json:"time"`
	Temperature int       `json:"temperature"`
	FeelsLike   int       `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// ForecastDay - суточная сводка: границы температур и преобладающее условие.
type ForecastDay struct {
	Date        string         `json:"date"`
	MinTemp     int            `json:"min_temp"`
	MaxTemp     int            `json:"max_temp"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Hours       []ForecastHour `json:"hours"`
}

// Forecast - прогноз на несколько дней для одной локации.
type Forecast struct {
	Location string        `json:"location"`
	Country  string        `json:"country"`
	Days     []ForecastDay `json:"days"`
}

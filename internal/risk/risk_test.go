package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_RuleTable(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		windSpeed   float64
		humidity    int
		wantLevel   string
	}{
		{
			name:        "мокрый снег около нуля",
			temperature: 2, windSpeed: 10, humidity: 85,
			wantLevel: LevelHigh,
		},
		{
			name:        "сильный мороз",
			temperature: -15, windSpeed: 5, humidity: 40,
			wantLevel: LevelMedium,
		},
		{
			name:        "теплая погода",
			temperature: 10, windSpeed: 5, humidity: 40,
			wantLevel: LevelLow,
		},
		{
			// Ветер проверяется раньше мороза: при -2 и ветре 35 должен
			// сработать именно ветровой High.
			name:        "штормовой ветер в мороз",
			temperature: -2, windSpeed: 35, humidity: 40,
			wantLevel: LevelHigh,
		},
		{
			name:        "обычная зима",
			temperature: -2, windSpeed: 5, humidity: 40,
			wantLevel: LevelLowToMedium,
		},
		{
			// Граница правила тепла полуоткрытая: ровно 5 градусов - уже Low.
			name:        "ровно пять градусов",
			temperature: 5, windSpeed: 0, humidity: 90,
			wantLevel: LevelLow,
		},
		{
			// Влажность ровно 80 не попадает под правило мокрого снега.
			name:        "влажность на границе",
			temperature: 2, windSpeed: 10, humidity: 80,
			wantLevel: LevelLowToMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := For(tt.temperature, tt.windSpeed, tt.humidity)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.NotEmpty(t, got.Description)
		})
	}
}

func TestFor_WetSnowBeatsWind(t *testing.T) {
	// Оба правила применимы, но правило мокрого снега стоит первым.
	got := For(2, 35, 85)
	assert.Equal(t, LevelHigh, got.Level)
	assert.Contains(t, got.Description, "Wet snow")
}

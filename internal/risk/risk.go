package risk

// Assessment - результат оценки лавинной опасности по погодным условиям.
type Assessment struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

// Уровни оценки. LowToMedium - дефолтная ветка таблицы, когда ни одно
// из специфичных правил не сработало.
const (
	LevelLow         = "Low"
	LevelLowToMedium = "Low to Medium"
	LevelMedium      = "Medium"
	LevelHigh        = "High"
)

// For оценивает лавинную опасность по температуре (°C), скорости ветра (м/с)
// и влажности (%). Правила проверяются строго по порядку, срабатывает первое:
//
//  1. мокрый снег около нуля (0 < t < 5 и влажность > 80) -> High
//  2. сильный ветер (> 30 м/с) -> High
//  3. сильный мороз (< -10) -> Medium
//  4. тепло (>= 5) -> Low
//  5. иначе -> Low to Medium
//
// Пороговые значения и порядок фиксированы, границы полуоткрытые.
func For(temperature float64, windSpeed float64, humidity int) Assessment {
	switch {
	case temperature > 0 && temperature < 5 && humidity > 80:
		return Assessment{
			Level:       LevelHigh,
			Description: "Wet snow conditions with temperatures around freezing point",
		}
	case windSpeed > 30:
		return Assessment{
			Level:       LevelHigh,
			Description: "Strong winds can create dangerous snow drifts and cornices",
		}
	case temperature < -10:
		return Assessment{
			Level:       LevelMedium,
			Description: "Very cold temperatures can create weak snow layers",
		}
	case temperature >= 5:
		return Assessment{
			Level:       LevelLow,
			Description: "Warmer temperatures typically stabilize snowpack",
		}
	default:
		return Assessment{
			Level:       LevelLowToMedium,
			Description: "Standard winter conditions. Stay alert for changing weather.",
		}
	}
}

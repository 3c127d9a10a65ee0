package service

// Алиасы для доступа к неэкспортируемым типам и константам из внешнего
// тестового пакета service_test (разрывает цикл импорта с пакетом mocks).
type (
	IncidentServiceImpl = incidentService
	UserServiceImpl     = userService
	WarningServiceImpl  = warningService
	WeatherServiceImpl  = weatherService
)

const MaxPhotosPerIncident = maxPhotosPerIncident

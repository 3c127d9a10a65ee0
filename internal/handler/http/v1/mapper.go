package v1

import (
	"github.com/snowshield/snow_shield_api/internal/models"
	"github.com/snowshield/snow_shield_api/internal/risk"
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Type:         model.Type,
		Title:        model.Title,
		Description:  model.Description,
		Pincode:      model.Pincode,
		Location:     model.Location,
		Photos:       model.Photos,
		RiskLevel:    model.RiskLevel,
		ReportedBy:   model.ReportedBy,
		ReporterName: model.ReporterName,
		IsActive:     model.IsActive,
		ResolvedAt:   model.ResolvedAt,
		ResolvedBy:   model.ResolvedBy,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToWarningResponse преобразует доменную модель в DTO для ответа
func ModelToWarningResponse(model *models.Warning) *WarningResponse {
	return &WarningResponse{
		ID:               model.ID,
		Title:            model.Title,
		Description:      model.Description,
		Severity:         model.Severity,
		AffectedPincodes: model.AffectedPincodes,
		ExpiryTime:       model.ExpiryTime,
		IsActive:         model.IsActive,
		ResolvedAt:       model.ResolvedAt,
		CreatedBy:        model.CreatedBy,
		CreatedByName:    model.CreatedByName,
		CreatedAt:        model.CreatedAt,
	}
}

// ModelsToWarningResponses преобразует слайс моделей в слайс DTO
func ModelsToWarningResponses(warnings []*models.Warning) []*WarningResponse {
	responses := make([]*WarningResponse, len(warnings))
	for i, model := range warnings {
		responses[i] = ModelToWarningResponse(model)
	}
	return responses
}

// ModelToUserResponse преобразует доменную модель в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Email:     model.Email,
		Name:      model.Name,
		Phone:     model.Phone,
		Pincode:   model.Pincode,
		UserType:  model.UserType,
		CreatedAt: model.CreatedAt,
	}
}

// ReportToWeatherResponse объединяет погоду и оценку риска в один ответ
func ReportToWeatherResponse(report *models.WeatherReport, assessment risk.Assessment) *WeatherResponse {
	return &WeatherResponse{
		Location:    report.Location,
		Country:     report.Country,
		Temperature: report.Temperature,
		FeelsLike:   report.FeelsLike,
		Humidity:    report.Humidity,
		WindSpeed:   report.WindSpeed,
		Description: report.Description,
		Icon:        report.Icon,
		ObservedAt:  report.ObservedAt,
		Risk:        assessment,
	}
}

package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/snowshield/snow_shield_api/internal/risk"
)

// SignUpRequest DTO для регистрации
// @Description DTO для регистрации пользователя
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Phone    string `json:"phone,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}

// LogInRequest DTO для входа
// @Description DTO для входа
type LogInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse DTO для ответа с токеном
// @Description DTO для ответа с токеном и профилем
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse DTO для ответа с профилем
// @Description DTO для ответа с профилем пользователя
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Pincode   string    `json:"pincode,omitempty"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest DTO для обновления профиля
// @Description DTO для обновления профиля. Email и роль не редактируются.
type UpdateProfileRequest struct {
	Name    string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Phone   string `json:"phone,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

// CreateIncidentRequest DTO для создания инцидента. Приходит как
// multipart/form-data вместе с фотографиями.
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type        string `form:"type" validate:"required,oneof=regular SOS"`
	Title       string `form:"title" validate:"required,min=2,max=255"`
	Description string `form:"description" validate:"required"`
	Pincode     string `form:"pincode" validate:"required"`
	Location    string `form:"location,omitempty"`
	RiskLevel   string `form:"risk_level,omitempty" validate:"omitempty,oneof=Low Medium High Extreme"`
}

// UpdateIncidentRequest DTO для обновления инцидента
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	RiskLevel   string `json:"risk_level,omitempty" validate:"omitempty,oneof=Low Medium High Extreme"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Pincode      string     `json:"pincode"`
	Location     string     `json:"location,omitempty"`
	Photos       []string   `json:"photos"`
	RiskLevel    string     `json:"risk_level,omitempty"`
	ReportedBy   uuid.UUID  `json:"reported_by"`
	ReporterName string     `json:"reporter_name"`
	IsActive     bool       `json:"is_active"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy   *uuid.UUID `json:"resolved_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateWarningRequest DTO для выпуска предупреждения
// @Description DTO для выпуска зонального предупреждения
type CreateWarningRequest struct {
	Title            string     `json:"title" validate:"required,min=2,max=255"`
	Description      string     `json:"description,omitempty"`
	Severity         string     `json:"severity" validate:"required,oneof=low medium high"`
	AffectedPincodes []string   `json:"affected_pincodes" validate:"required,min=1,dive,required"`
	ExpiryTime       *time.Time `json:"expiry_time,omitempty"`
}

// WarningResponse DTO для ответа с информацией о предупреждении
// @Description DTO для ответа с информацией о предупреждении
type WarningResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Severity         string     `json:"severity"`
	AffectedPincodes []string   `json:"affected_pincodes"`
	ExpiryTime       *time.Time `json:"expiry_time,omitempty"`
	IsActive         bool       `json:"is_active"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	CreatedByName    string     `json:"created_by_name"`
	CreatedAt        time.Time  `json:"created_at"`
}

// WeatherResponse DTO для ответа с погодой и оценкой риска
// @Description Текущая погода с оценкой лавинной опасности
type WeatherResponse struct {
	Location    string          `json:"location"`
	Country     string          `json:"country"`
	Temperature int             `json:"temperature"`
	FeelsLike   int             `json:"feels_like"`
	Humidity    int             `json:"humidity"`
	WindSpeed   float64         `json:"wind_speed"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	ObservedAt  time.Time       `json:"observed_at"`
	Risk        risk.Assessment `json:"risk"`
}

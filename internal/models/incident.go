package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы инцидентов. Канонический набор, синоним "incident" из старых
// ревизий клиента не принимается.
const (
	IncidentTypeRegular = "regular"
	IncidentTypeSOS     = "SOS"
)

// Уровни лавинного риска, присваиваемые инциденту при создании.
const (
	RiskLow     = "Low"
	RiskMedium  = "Medium"
	RiskHigh    = "High"
	RiskExtreme = "Extreme"
)

// Incident представляет сообщение об опасности, отправленное пользователем.
// SOS-инциденты имеют приоритет над обычными во всех смешанных списках.
type Incident struct {
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

// IsSOS сообщает, является ли инцидент экстренным вызовом.
func (i *Incident) IsSOS() bool {
	return i.Type == IncidentTypeSOS
}

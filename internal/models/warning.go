package models

import (
	"time"

	"github.com/google/uuid"
)

// Уровни серьезности предупреждения. Четырехуровневый вариант из
// админского интерфейса старой ревизии не поддерживается.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Warning представляет зональное предупреждение, выпущенное администратором
// для набора пин-кодов. Истечение срока не сбрасывает флаг IsActive в базе:
// просроченные записи отфильтровываются на чтении.
type Warning struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Severity         string     `json:"severity"`
	AffectedPincodes []string   `json:"affected_pincodes"`
	ExpiryTime       *time.Time `json:"expiry_time,omitempty"`
	IsActive         bool       `json:"is_active"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	CreatedByName    string     `json:"created_by_name"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ActiveAt сообщает, действует ли предупреждение в момент now:
// флаг должен быть установлен, а срок либо не задан, либо еще не наступил.
func (w *Warning) ActiveAt(now time.Time) bool {
	if !w.IsActive {
		return false
	}
	if w.ExpiryTime == nil {
		return true
	}
	return w.ExpiryTime.After(now)
}

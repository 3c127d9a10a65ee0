package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/snowshield/snow_shield_api/internal/events"
	"github.com/snowshield/snow_shield_api/internal/models"
	"github.com/snowshield/snow_shield_api/internal/observability"
	"github.com/snowshield/snow_shield_api/internal/webhook"
)

// WarningRepository определяет контракт для работы с бд предупреждений
type WarningRepository interface {
	Create(ctx context.Context, warning *models.Warning) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Warning, error)
	ListForPincode(ctx context.Context, pincode string) ([]*models.Warning, error)
	ListActive(ctx context.Context) ([]*models.Warning, error)
	Resolve(ctx context.Context, id uuid.UUID) (bool, error)
}

// WarningService определяет контракт для бизнес-логики зональных предупреждений
type WarningService interface {
	CreateWarning(ctx context.Context, session *models.Session, warning *models.Warning) error
	WarningsForPincode(ctx context.Context, pincode string) ([]*models.Warning, error)
	ActiveWarningsForPincode(ctx context.Context, pincode string) ([]*models.Warning, error)
	ListActiveWarnings(ctx context.Context, session *models.Session) ([]*models.Warning, error)
	ResolveWarning(ctx context.Context, session *models.Session, id uuid.UUID) error
}

type warningService struct {
	repo    WarningRepository
	alerts  webhook.AlertPublisher
	bus     events.Publisher
	logger  *logrus.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

func NewWarningService(
	repo WarningRepository,
	alerts webhook.AlertPublisher,
	bus events.Publisher,
	logger *logrus.Logger,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) WarningService {
	return &warningService{
		repo:    repo,
		alerts:  alerts,
		bus:     bus,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// CreateWarning выпускает предупреждение. Только администратор.
func (s *warningService) CreateWarning(ctx context.Context, session *models.Session, warning *models.Warning) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "warning",
		"method":   "CreateWarning",
		"severity": warning.Severity,
	})
	log.Info("Attempting to issue a warning")

	if !session.IsAdmin() {
		log.Warn("Warning creation denied for role")
		return fmt.Errorf("%w: only admins may issue warnings", ErrForbidden)
	}

	if err := validateNewWarning(warning); err != nil {
		log.WithError(err).Warn("Warning validation failed")
		return err
	}

	warning.IsActive = true
	warning.ResolvedAt = nil
	warning.CreatedBy = session.UserID
	warning.CreatedByName = session.Name

	if err := s.repo.Create(ctx, warning); err != nil {
		log.WithError(err).Error("Failed to create warning in repository")
		return fmt.Errorf("service: could not create warning: %w", err)
	}

	s.metrics.IncWarningIssued(warning.Severity)

	if err := s.bus.Publish(ctx, events.Event{
		Type:       events.TypeWarningCreated,
		EntityID:   warning.ID.String(),
		OccurredAt: s.clock.Now(),
		Payload:    warning,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish warning.created event")
	}

	if err := s.alerts.Publish(ctx, webhook.AlertEvent{
		Kind:        webhook.KindWarningIssued,
		WarningID:   warning.ID.String(),
		Title:       warning.Title,
		Description: warning.Description,
		Pincodes:    warning.AffectedPincodes,
		Severity:    warning.Severity,
		OccurredAt:  s.clock.Now(),
	}); err != nil {
		log.WithError(err).Warn("Failed to enqueue warning webhook")
	}

	log.WithField("warning_id", warning.ID).Info("Warning issued successfully")
	return nil
}

// WarningsForPincode возвращает активные по флагу предупреждения, зона которых
// содержит пин-код. Просроченные, но не снятые записи сюда попадают:
// фильтрация по сроку - забота ActiveWarningsForPincode.
func (s *warningService) WarningsForPincode(ctx context.Context, pincode string) ([]*models.Warning, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "warning",
		"method":  "WarningsForPincode",
		"pincode": pincode,
	})

	if strings.TrimSpace(pincode) == "" {
		return nil, fmt.Errorf("%w: pincode is required", ErrValidation)
	}

	warnings, err := s.repo.ListForPincode(ctx, pincode)
	if err != nil {
		log.WithError(err).Error("Failed to list warnings for pincode")
		return nil, fmt.Errorf("service: could not list warnings: %w", err)
	}
	return warnings, nil
}

// ActiveWarningsForPincode - представление "действующие предупреждения":
// из выборки по пин-коду убираются записи с истекшим сроком, независимо от
// хранимого флага isActive.
func (s *warningService) ActiveWarningsForPincode(ctx context.Context, pincode string) ([]*models.Warning, error) {
	warnings, err := s.WarningsForPincode(ctx, pincode)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	active := make([]*models.Warning, 0, len(warnings))
	for _, w := range warnings {
		if w.ActiveAt(now) {
			active = append(active, w)
		}
	}
	return active, nil
}

// ListActiveWarnings - административный список всех активных предупреждений.
func (s *warningService) ListActiveWarnings(ctx context.Context, session *models.Session) ([]*models.Warning, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "warning",
		"method":  "ListActiveWarnings",
	})

	if !session.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may list all warnings", ErrForbidden)
	}

	warnings, err := s.repo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active warnings")
		return nil, fmt.Errorf("service: could not list active warnings: %w", err)
	}
	return warnings, nil
}

// ResolveWarning снимает предупреждение. Повторное снятие - no-op.
func (s *warningService) ResolveWarning(ctx context.Context, session *models.Session, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "warning",
		"method":     "ResolveWarning",
		"warning_id": id,
	})

	if !session.IsAdmin() {
		return fmt.Errorf("%w: only admins may resolve warnings", ErrForbidden)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load warning for resolve")
		return fmt.Errorf("service: could not load warning: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: warning %s", ErrNotFound, id)
	}

	changed, err := s.repo.Resolve(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to resolve warning in repository")
		return fmt.Errorf("service: could not resolve warning: %w", err)
	}
	if !changed {
		// Уже было снято ранее.
		log.Info("Warning already resolved")
		return nil
	}

	if err := s.alerts.Publish(ctx, webhook.AlertEvent{
		Kind:       webhook.KindWarningResolved,
		WarningID:  existing.ID.String(),
		Title:      existing.Title,
		Pincodes:   existing.AffectedPincodes,
		Severity:   existing.Severity,
		OccurredAt: s.clock.Now(),
	}); err != nil {
		log.WithError(err).Warn("Failed to enqueue warning resolution webhook")
	}

	log.Info("Warning resolved successfully")
	return nil
}

func validateNewWarning(warning *models.Warning) error {
	switch warning.Severity {
	case models.SeverityLow, models.SeverityMedium, models.SeverityHigh:
	default:
		return fmt.Errorf("%w: invalid severity %q", ErrValidation, warning.Severity)
	}
	if strings.TrimSpace(warning.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(warning.AffectedPincodes) == 0 {
		return fmt.Errorf("%w: at least one affected pincode is required", ErrValidation)
	}
	for _, p := range warning.AffectedPincodes {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: affected pincodes must be non-empty", ErrValidation)
		}
	}
	return nil
}

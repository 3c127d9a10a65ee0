package service

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/snowshield/snow_shield_api/internal/config"
	"github.com/snowshield/snow_shield_api/internal/events"
	"github.com/snowshield/snow_shield_api/internal/models"
	"github.com/snowshield/snow_shield_api/internal/observability"
	"github.com/snowshield/snow_shield_api/internal/webhook"
)

// Лимиты на фотографии к инциденту. Проверяются на сервере,
// клиентской валидации не доверяем.
const (
	maxPhotosPerIncident = 5
	maxPhotoSizeBytes    = 5 << 20
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]*models.Incident, error)
	ListByPincode(ctx context.Context, pincode string) ([]*models.Incident, error)
	ListSOS(ctx context.Context) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// BlobStore определяет контракт хранилища фотографий. Put возвращает
// публичный URL загруженного объекта.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// PhotoUpload - один файл, присланный вместе с инцидентом.
type PhotoUpload struct {
	Filename string
	Data     []byte
}

// IncidentPatch - частичное обновление инцидента. Пустые поля не трогаются.
type IncidentPatch struct {
	Title       string
	Description string
	Location    string
	RiskLevel   string
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, session *models.Session, incident *models.Incident, photos []PhotoUpload) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, session *models.Session) ([]*models.Incident, error)
	ListIncidentsByPincode(ctx context.Context, session *models.Session, pincode string) ([]*models.Incident, error)
	ListSOSAlerts(ctx context.Context, session *models.Session) ([]*models.Incident, error)
	UpdateIncident(ctx context.Context, session *models.Session, id uuid.UUID, patch IncidentPatch) (*models.Incident, error)
	DeleteIncident(ctx context.Context, session *models.Session, id uuid.UUID) error
	ResolveSOS(ctx context.Context, session *models.Session, id uuid.UUID) (*models.Incident, error)
}

type incidentService struct {
	repo    IncidentRepository
	store   BlobStore
	alerts  webhook.AlertPublisher
	bus     events.Publisher
	logger  *logrus.Logger
	cfg     *config.Config
	metrics *observability.Metrics
	clock   clockwork.Clock
}

func NewIncidentService(
	repo IncidentRepository,
	store BlobStore,
	alerts webhook.AlertPublisher,
	bus events.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) IncidentService {
	return &incidentService{
		repo:    repo,
		store:   store,
		alerts:  alerts,
		bus:     bus,
		logger:  logger,
		cfg:     cfg,
		metrics: metrics,
		clock:   clock,
	}
}

// CreateIncident валидирует отчет, последовательно загружает фотографии и
// сохраняет запись. Если одна из загрузок падает, уже загруженные в рамках
// этого вызова файлы удаляются и запись не создается.
func (s *incidentService) CreateIncident(ctx context.Context, session *models.Session, incident *models.Incident, photos []PhotoUpload) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"type":    incident.Type,
		"pincode": incident.Pincode,
	})
	log.Info("Attempting to create a new incident")

	if err := s.validateNewIncident(incident, photos); err != nil {
		log.WithError(err).Warn("Incident validation failed")
		return err
	}

	urls, keys, err := s.uploadPhotos(ctx, photos)
	if err != nil {
		log.WithError(err).Error("Failed to upload incident photos")
		// Компенсация: убираем уже загруженные файлы этого вызова,
		// чтобы не оставлять осиротевшие блобы.
		for _, key := range keys {
			if delErr := s.store.Delete(ctx, key); delErr != nil {
				log.WithError(delErr).WithField("key", key).Warn("Failed to clean up uploaded photo")
			}
		}
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	incident.Photos = urls
	incident.IsActive = true
	incident.ReportedBy = session.UserID
	incident.ReporterName = session.Name

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	s.metrics.IncReportCreated(incident.Type)

	if err := s.bus.Publish(ctx, events.Event{
		Type:       events.TypeIncidentCreated,
		EntityID:   incident.ID.String(),
		OccurredAt: s.clock.Now(),
		Payload:    incident,
	}); err != nil {
		// Поток событий не участвует в согласованности данных,
		// поэтому сбой публикации не откатывает создание.
		log.WithError(err).Warn("Failed to publish incident.created event")
	}

	if incident.IsSOS() {
		alert := webhook.AlertEvent{
			Kind:        webhook.KindSOSRaised,
			IncidentID:  incident.ID.String(),
			Title:       incident.Title,
			Description: incident.Description,
			Pincode:     incident.Pincode,
			RiskLevel:   incident.RiskLevel,
			OccurredAt:  s.clock.Now(),
		}
		if err := s.alerts.Publish(ctx, alert); err != nil {
			log.WithError(err).Warn("Failed to enqueue SOS alert webhook")
		}
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID. Отсутствие записи - это (nil, nil),
// а не ошибка.
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Incident cache lookup failed")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident == nil {
		return nil, nil
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// ListIncidents возвращает все инциденты: SOS первыми, внутри групп - новые
// сверху. SOS-записи скрываются от обычных пользователей уже после выборки,
// так как сама выборка ролей не знает.
func (s *incidentService) ListIncidents(ctx context.Context, session *models.Session) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	incidents, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	incidents = filterForViewer(session, incidents)
	sortIncidents(incidents)

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// ListIncidentsByPincode возвращает инциденты одного пин-кода с теми же
// правилами сортировки и видимости.
func (s *incidentService) ListIncidentsByPincode(ctx context.Context, session *models.Session, pincode string) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidentsByPincode",
		"pincode": pincode,
	})

	if strings.TrimSpace(pincode) == "" {
		return nil, fmt.Errorf("%w: pincode is required", ErrValidation)
	}

	incidents, err := s.repo.ListByPincode(ctx, pincode)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents by pincode")
		return nil, fmt.Errorf("service: could not list incidents by pincode: %w", err)
	}

	incidents = filterForViewer(session, incidents)
	sortIncidents(incidents)
	return incidents, nil
}

// ListSOSAlerts - лента экстренных вызовов, доступна только администраторам
// и спасателям.
func (s *incidentService) ListSOSAlerts(ctx context.Context, session *models.Session) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListSOSAlerts",
		"user_id": session.UserID,
	})

	if !session.CanSeeSOS() {
		log.Warn("SOS listing denied for role")
		return nil, fmt.Errorf("%w: SOS alerts are restricted", ErrForbidden)
	}

	incidents, err := s.repo.ListSOS(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list SOS alerts")
		return nil, fmt.Errorf("service: could not list SOS alerts: %w", err)
	}

	sortIncidents(incidents)
	return incidents, nil
}

// UpdateIncident применяет частичное обновление. Разрешено автору и
// администратору.
func (s *incidentService) UpdateIncident(ctx context.Context, session *models.Session, id uuid.UUID, patch IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load incident for update")
		return nil, fmt.Errorf("service: could not load incident: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: incident %s", ErrNotFound, id)
	}

	if !session.IsAdmin() && existing.ReportedBy != session.UserID {
		return nil, fmt.Errorf("%w: only the author or an admin may update an incident", ErrForbidden)
	}

	if patch.RiskLevel != "" && !validRiskLevel(patch.RiskLevel) {
		return nil, fmt.Errorf("%w: invalid risk level %q", ErrValidation, patch.RiskLevel)
	}

	if patch.Title != "" {
		existing.Title = patch.Title
	}
	if patch.Description != "" {
		existing.Description = patch.Description
	}
	if patch.Location != "" {
		existing.Location = patch.Location
	}
	if patch.RiskLevel != "" {
		existing.RiskLevel = patch.RiskLevel
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident updated successfully")
	return existing, nil
}

// DeleteIncident удаляет инцидент. Разрешено автору и администратору.
func (s *incidentService) DeleteIncident(ctx context.Context, session *models.Session, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load incident for delete")
		return fmt.Errorf("service: could not load incident: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: incident %s", ErrNotFound, id)
	}

	if !session.IsAdmin() && existing.ReportedBy != session.UserID {
		return fmt.Errorf("%w: only the author or an admin may delete an incident", ErrForbidden)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident deleted successfully")
	return nil
}

// ResolveSOS закрывает экстренный вызов: isActive=false, фиксируются время и
// автор разрешения. Доступно администраторам и спасателям.
func (s *incidentService) ResolveSOS(ctx context.Context, session *models.Session, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveSOS",
		"incident_id": id,
		"user_id":     session.UserID,
	})

	if !session.CanSeeSOS() {
		return nil, fmt.Errorf("%w: resolving SOS is restricted", ErrForbidden)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load incident for resolve")
		return nil, fmt.Errorf("service: could not load incident: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: incident %s", ErrNotFound, id)
	}
	if !existing.IsSOS() {
		return nil, fmt.Errorf("%w: incident %s is not an SOS alert", ErrValidation, id)
	}

	now := s.clock.Now()
	resolvedBy := session.UserID
	existing.IsActive = false
	existing.ResolvedAt = &now
	existing.ResolvedBy = &resolvedBy

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to resolve SOS in repository")
		return nil, fmt.Errorf("service: could not resolve SOS: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	if err := s.alerts.Publish(ctx, webhook.AlertEvent{
		Kind:       webhook.KindSOSResolved,
		IncidentID: existing.ID.String(),
		Title:      existing.Title,
		Pincode:    existing.Pincode,
		OccurredAt: now,
	}); err != nil {
		log.WithError(err).Warn("Failed to enqueue SOS resolution webhook")
	}

	log.Info("SOS alert resolved")
	return existing, nil
}

func (s *incidentService) validateNewIncident(incident *models.Incident, photos []PhotoUpload) error {
	if incident.Type != models.IncidentTypeRegular && incident.Type != models.IncidentTypeSOS {
		return fmt.Errorf("%w: invalid incident type %q", ErrValidation, incident.Type)
	}
	if strings.TrimSpace(incident.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(incident.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if strings.TrimSpace(incident.Pincode) == "" {
		return fmt.Errorf("%w: pincode is required", ErrValidation)
	}
	if incident.RiskLevel != "" && !validRiskLevel(incident.RiskLevel) {
		return fmt.Errorf("%w: invalid risk level %q", ErrValidation, incident.RiskLevel)
	}
	if len(photos) > maxPhotosPerIncident {
		return fmt.Errorf("%w: at most %d photos are allowed", ErrValidation, maxPhotosPerIncident)
	}
	for _, p := range photos {
		if len(p.Data) == 0 {
			return fmt.Errorf("%w: photo %q is empty", ErrValidation, p.Filename)
		}
		if len(p.Data) > maxPhotoSizeBytes {
			return fmt.Errorf("%w: photo %q exceeds 5 MB", ErrValidation, p.Filename)
		}
		if ct := sniffContentType(p.Data); ct != "image/jpeg" && ct != "image/png" {
			return fmt.Errorf("%w: photo %q has unsupported type %s", ErrValidation, p.Filename, ct)
		}
	}
	return nil
}

// uploadPhotos загружает файлы строго последовательно, сохраняя порядок URL
// равным порядку входных файлов. Возвращает также ключи успешно загруженных
// блобов для компенсации при сбое.
func (s *incidentService) uploadPhotos(ctx context.Context, photos []PhotoUpload) ([]string, []string, error) {
	urls := make([]string, 0, len(photos))
	keys := make([]string, 0, len(photos))
	for _, p := range photos {
		key := fmt.Sprintf("incidents/%d_%s", s.clock.Now().UnixMilli(), sanitizeFilename(p.Filename))
		url, err := s.store.Put(ctx, key, sniffContentType(p.Data), p.Data)
		if err != nil {
			return nil, keys, fmt.Errorf("upload %q: %w", p.Filename, err)
		}
		urls = append(urls, url)
		keys = append(keys, key)
	}
	return urls, keys, nil
}

// sortIncidents упорядочивает смешанный список: SOS всегда раньше обычных,
// внутри каждой группы - новые сверху. Нулевое время создания считается
// самым старым.
func sortIncidents(incidents []*models.Incident) {
	sort.SliceStable(incidents, func(i, j int) bool {
		a, b := incidents[i], incidents[j]
		if a.IsSOS() != b.IsSOS() {
			return a.IsSOS()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// filterForViewer убирает SOS-инциденты из общих списков для ролей без
// допуска к ним.
func filterForViewer(session *models.Session, incidents []*models.Incident) []*models.Incident {
	if session.CanSeeSOS() {
		return incidents
	}
	visible := make([]*models.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if !inc.IsSOS() {
			visible = append(visible, inc)
		}
	}
	return visible
}

func validRiskLevel(level string) bool {
	switch level {
	case models.RiskLow, models.RiskMedium, models.RiskHigh, models.RiskExtreme:
		return true
	}
	return false
}

// sniffContentType определяет MIME по содержимому, а не по расширению.
func sniffContentType(data []byte) string {
	n := len(data)
	if n > 512 {
		n = 512
	}
	return http.DetectContentType(data[:n])
}

// sanitizeFilename оставляет от клиентского имени только базовую часть
// без разделителей путей.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "photo"
	}
	return strings.ReplaceAll(name, " ", "_")
}

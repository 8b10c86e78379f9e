package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/bodycam_dashboard/internal/annotation"
	"github.com/shenikar/bodycam_dashboard/internal/classifier"
	"github.com/shenikar/bodycam_dashboard/internal/geo"
	"github.com/shenikar/bodycam_dashboard/internal/mapview"
	"github.com/shenikar/bodycam_dashboard/internal/metrics"
	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/shenikar/bodycam_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд записей и их кешем
type IncidentRepository interface {
	Create(ctx context.Context, record *models.IncidentRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error)
	List(ctx context.Context) ([]models.IncidentRecord, error)
	ListWithin(ctx context.Context, bounds models.Bounds) ([]models.IncidentRecord, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error)
	SetIncidentCache(ctx context.Context, record *models.IncidentRecord) error
	GetListFromCache(ctx context.Context) ([]models.IncidentRecord, error)
	SetListCache(ctx context.Context, records []models.IncidentRecord) error
	InvalidateListCache(ctx context.Context) error
}

// IncidentService определяет контракт бизнес-логики записей и карты
type IncidentService interface {
	CreateIncident(ctx context.Context, record *models.IncidentRecord) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error)
	ListIncidents(ctx context.Context) ([]models.IncidentRecord, error)
	Views() []models.MapView
	Scene(ctx context.Context, viewName string) (*models.MapScene, error)
	Preview(viewName string, in *geo.Input, record models.IncidentRecord) ([]models.Overlay, error)
}

type viewRenderer struct {
	preset  mapview.Preset
	builder *annotation.Builder
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	publisher webhook.AlertPublisher
	metrics   *metrics.Collector
	// классификатор для оповещений при создании записи
	classifier *classifier.Classifier
	views      map[string]viewRenderer
	registry   *mapview.Registry
}

func NewIncidentService(
	repo IncidentRepository,
	logger *logrus.Logger,
	registry *mapview.Registry,
	publisher webhook.AlertPublisher,
	collector *metrics.Collector,
) IncidentService {
	s := &incidentService{
		repo:       repo,
		logger:     logger,
		publisher:  publisher,
		metrics:    collector,
		classifier: classifier.Default(),
		views:      make(map[string]viewRenderer),
		registry:   registry,
	}
	for _, v := range registry.Views() {
		preset, _ := registry.Get(v.Name)
		s.views[v.Name] = viewRenderer{
			preset:  preset,
			builder: annotation.NewBuilder(classifier.New(preset.Keywords), preset.Style),
		}
	}
	return s
}

// CreateIncident сохраняет запись и публикует оповещение, если описание опасное
func (s *incidentService) CreateIncident(ctx context.Context, record *models.IncidentRecord) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   record.Title,
	})
	log.Info("Attempting to create a new incident record")

	if !geo.InRange(record.Position) {
		log.Warn("Rejected incident record with out of range position")
		return fmt.Errorf("service: invalid incident position: %w", geo.ErrOutOfRange)
	}

	if err := s.repo.Create(ctx, record); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	log = log.WithField("incident_id", record.ID)

	if err := s.repo.InvalidateListCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident list cache")
	}

	match := s.classifier.Matches(record.Description)
	s.metrics.ObserveSeverity(match.Severity)
	if match.Severity != models.SeverityNone {
		event := webhook.AlertEvent{
			IncidentID:      record.ID.String(),
			Title:           record.Title,
			Severity:        match.Severity,
			MatchedKeywords: match.Keywords(),
			Latitude:        record.Position.Lat,
			Longitude:       record.Position.Lng,
			MediaRef:        record.MediaRef,
			Timestamp:       time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish incident alert")
		} else {
			log.WithField("severity", match.Severity.String()).Info("Incident alert published")
		}
	}

	log.Info("Incident record created successfully")
	return nil
}

// GetIncident получает запись по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, record); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return record, nil
}

// ListIncidents возвращает все записи
func (s *incidentService) ListIncidents(ctx context.Context) ([]models.IncidentRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})
	log.Info("Listing incidents")

	cached, err := s.repo.GetListFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident list from cache")
	}
	if cached != nil {
		return cached, nil
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	if err := s.repo.SetListCache(ctx, records); err != nil {
		log.WithError(err).Warn("Failed to cache incident list")
	}

	log.WithField("count", len(records)).Info("Incidents listed successfully")
	return records, nil
}

func (s *incidentService) Views() []models.MapView {
	return s.registry.Views()
}

// Scene собирает наложения для записей в границах вида
func (s *incidentService) Scene(ctx context.Context, viewName string) (*models.MapScene, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Scene",
		"view":    viewName,
	})

	r, ok := s.views[viewName]
	if !ok {
		log.Warn("Unknown map view requested")
		return nil, fmt.Errorf("service: view %q: %w", viewName, models.ErrUnknownView)
	}

	var (
		records []models.IncidentRecord
		err     error
	)
	if coversWorld(r.preset.View.MaxBounds) {
		records, err = s.ListIncidents(ctx)
	} else {
		records, err = s.repo.ListWithin(ctx, r.preset.View.MaxBounds)
	}
	if err != nil {
		log.WithError(err).Error("Failed to load incidents for view")
		return nil, fmt.Errorf("service: could not load view %q: %w", viewName, err)
	}

	overlays := r.builder.Build(records)
	log.WithFields(logrus.Fields{"records": len(records), "overlays": len(overlays)}).Info("Map scene built")
	return &models.MapScene{View: r.preset.View, Overlays: overlays}, nil
}

// Preview применяет ручной ввод координат и перестраивает наложения одной записи.
// При ошибке проверки позиция в in не меняется.
func (s *incidentService) Preview(viewName string, in *geo.Input, record models.IncidentRecord) ([]models.Overlay, error) {
	r, ok := s.views[viewName]
	if !ok {
		return nil, fmt.Errorf("service: view %q: %w", viewName, models.ErrUnknownView)
	}
	if err := in.Update(); err != nil {
		return nil, err
	}
	record.Position = in.Position
	return r.builder.Build([]models.IncidentRecord{record}), nil
}

func coversWorld(b models.Bounds) bool {
	return b.SouthWest.Lat <= -90 && b.SouthWest.Lng <= -180 && b.NorthEast.Lat >= 90 && b.NorthEast.Lng >= 180
}

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/bodycam_dashboard/internal/geo"
	"github.com/shenikar/bodycam_dashboard/internal/mapview"
	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/shenikar/bodycam_dashboard/internal/service/mocks"
	"github.com/shenikar/bodycam_dashboard/internal/webhook"
	webhook_mocks "github.com/shenikar/bodycam_dashboard/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var dublinBounds = models.Bounds{
	SouthWest: models.Position{Lat: 51.3, Lng: -10.7},
	NorthEast: models.Position{Lat: 55.5, Lng: -5.3},
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *webhook_mocks.MockAlertPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	webhookMock := webhook_mocks.NewMockAlertPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	dublin := mapview.DefaultPreset()
	dublin.View.Name = "dublin"
	dublin.View.Center = models.Position{Lat: 53.3492832, Lng: -6.2476664}
	dublin.View.MaxBounds = dublinBounds
	registry, err := mapview.NewRegistry(mapview.DefaultPreset(), dublin)
	require.NoError(t, err)

	service := NewIncidentService(repoMock, logger, registry, webhookMock, nil)
	return service.(*incidentService), repoMock, webhookMock
}

func TestCreateIncident_PublishesAlertForPrimary(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	newID := uuid.New()
	record := &models.IncidentRecord{
		Title:       "BodyCam footage",
		Description: "Act of physical violence and angry shouting",
		Position:    models.Position{Lat: 51.505, Lng: -0.09},
	}

	// Ожидания
	repoMock.EXPECT().Create(ctx, record).DoAndReturn(func(_ context.Context, r *models.IncidentRecord) error {
		r.ID = newID
		return nil
	}).Times(1)
	repoMock.EXPECT().InvalidateListCache(ctx).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev webhook.AlertEvent) error {
		assert.Equal(t, newID.String(), ev.IncidentID)
		assert.Equal(t, models.SeverityPrimary, ev.Severity)
		assert.Equal(t, []string{"violence", "angry", "shouting"}, ev.MatchedKeywords)
		assert.Equal(t, 51.505, ev.Latitude)
		return nil
	}).Times(1)

	// Действие
	err := service.CreateIncident(ctx, record)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, newID, record.ID)
}

func TestCreateIncident_NoAlertForNone(t *testing.T) {
	service, repoMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	record := &models.IncidentRecord{Description: "routine stop", Position: models.Position{Lat: 1, Lng: 2}}

	repoMock.EXPECT().Create(ctx, record).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateListCache(ctx).Return(errors.New("redis down")).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, service.CreateIncident(ctx, record))
}

func TestCreateIncident_PublishErrorIsNotFatal(t *testing.T) {
	service, repoMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	record := &models.IncidentRecord{Description: "shouting", Position: models.Position{Lat: 1, Lng: 2}}

	repoMock.EXPECT().Create(ctx, record).Return(nil)
	repoMock.EXPECT().InvalidateListCache(ctx).Return(nil)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue full"))

	assert.NoError(t, service.CreateIncident(ctx, record))
}

func TestCreateIncident_InvalidPosition(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	record := &models.IncidentRecord{Position: models.Position{Lat: 91, Lng: 0}}

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := service.CreateIncident(context.Background(), record)
	assert.ErrorIs(t, err, geo.ErrOutOfRange)
}

func TestCreateIncident_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	record := &models.IncidentRecord{Position: models.Position{Lat: 1, Lng: 1}}
	dbErr := errors.New("db error")

	repoMock.EXPECT().Create(ctx, record).Return(dbErr)

	err := service.CreateIncident(ctx, record)
	assert.ErrorIs(t, err, dbErr)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.IncidentRecord{ID: incidentID, Title: "Запись из кеша"}

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(expected, nil).Times(1)
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	record, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, record)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.IncidentRecord{ID: incidentID, Title: "Запись из БД"}

	// 1. Промах кеша
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetIncidentCache(ctx, expected).Return(nil).Times(1)

	record, err := service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expected, record)
}

func TestGetIncident_NotFound(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, errors.New("cache error"))
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, models.ErrNotFound)

	_, err := service.GetIncident(ctx, incidentID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListIncidents_CacheMissThenStore(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	records := []models.IncidentRecord{{ID: uuid.New()}, {ID: uuid.New()}}

	repoMock.EXPECT().GetListFromCache(ctx).Return(nil, nil)
	repoMock.EXPECT().List(ctx).Return(records, nil)
	repoMock.EXPECT().SetListCache(ctx, records).Return(nil)

	got, err := service.ListIncidents(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestScene_WorldViewUsesCachedList(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	records := []models.IncidentRecord{
		{ID: uuid.New(), Description: "violence", Position: models.Position{Lat: 51.505, Lng: -0.09}},
		{ID: uuid.New(), Description: "calm", Position: models.Position{Lat: -0.2, Lng: 40}},
	}

	repoMock.EXPECT().GetListFromCache(ctx).Return(records, nil)
	repoMock.EXPECT().ListWithin(gomock.Any(), gomock.Any()).Times(0)

	scene, err := service.Scene(ctx, mapview.DefaultViewName)

	require.NoError(t, err)
	assert.Equal(t, mapview.DefaultViewName, scene.View.Name)
	assert.Len(t, scene.Overlays, 3)
}

func TestScene_BoundedViewQueriesWithin(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	records := []models.IncidentRecord{
		{ID: uuid.New(), Description: "shouting", Position: models.Position{Lat: 53.3492832, Lng: -6.2476664}},
	}

	repoMock.EXPECT().ListWithin(ctx, dublinBounds).Return(records, nil)

	scene, err := service.Scene(ctx, "dublin")

	require.NoError(t, err)
	require.Len(t, scene.Overlays, 2)
	assert.Equal(t, models.SeveritySecondary, scene.Overlays[1].Severity)
}

func TestScene_UnknownView(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	_, err := service.Scene(context.Background(), "mars")
	assert.ErrorIs(t, err, models.ErrUnknownView)
}

func TestScene_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().ListWithin(ctx, dublinBounds).Return(nil, errors.New("db error"))

	_, err := service.Scene(ctx, "dublin")
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	service, _, _ := newTestIncidentService(t)
	start := models.Position{Lat: 51.505, Lng: -0.09}
	in := geo.NewInput(start)
	record := models.IncidentRecord{Description: "aggression"}

	// Некорректный ввод не меняет позицию
	in.LatText = "north"
	_, err := service.Preview(mapview.DefaultViewName, in, record)
	require.ErrorIs(t, err, geo.ErrNotNumeric)
	assert.Equal(t, start, in.Position)

	in.LatText, in.LngText = "53.35", "-6.25"
	overlays, err := service.Preview(mapview.DefaultViewName, in, record)
	require.NoError(t, err)
	require.Len(t, overlays, 2)
	assert.Equal(t, models.Position{Lat: 53.35, Lng: -6.25}, overlays[0].Center)
	assert.Equal(t, models.SeverityPrimary, overlays[1].Severity)

	_, err = service.Preview("mars", in, record)
	assert.ErrorIs(t, err, models.ErrUnknownView)
}

func TestViews(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	views := service.Views()
	require.Len(t, views, 2)
	assert.Equal(t, "dashboard", views[0].Name)
	assert.Equal(t, "dublin", views[1].Name)
}

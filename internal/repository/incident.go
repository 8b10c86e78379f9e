package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/shenikar/bodycam_dashboard/internal/service"
)

const (
	incidentListCacheKey = "incidents:all"
	selectIncident       = `
		SELECT
			id,
			title,
			description,
			media_ref,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			created_at
		FROM incidents`
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись в бд. ID и время создания назначает база.
func (r *IncidentRepository) Create(ctx context.Context, record *models.IncidentRecord) error {
	query := `
		INSERT INTO incidents (title, description, media_ref, location)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326))
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		record.Title,
		record.Description,
		record.MediaRef,
		record.Position.Lng,
		record.Position.Lat,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает запись по её UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error) {
	row := r.db.QueryRow(ctx, selectIncident+` WHERE id = $1;`, id)
	record, err := scanIncident(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return &record, nil
}

// List возвращает все записи в порядке создания
func (r *IncidentRepository) List(ctx context.Context) ([]models.IncidentRecord, error) {
	rows, err := r.db.Query(ctx, selectIncident+` ORDER BY created_at, id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectIncidents(rows)
}

// ListWithin возвращает записи внутри прямоугольника, границы включительно
func (r *IncidentRepository) ListWithin(ctx context.Context, bounds models.Bounds) ([]models.IncidentRecord, error) {
	query := selectIncident + `
		WHERE ST_Covers(
			ST_MakeEnvelope($1, $2, $3, $4, 4326),
			location::geometry
		)
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query,
		bounds.SouthWest.Lng,
		bounds.SouthWest.Lat,
		bounds.NorthEast.Lng,
		bounds.NorthEast.Lat,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents within bounds: %w", err)
	}
	return collectIncidents(rows)
}

func scanIncident(row pgx.Row) (models.IncidentRecord, error) {
	var rec models.IncidentRecord
	err := row.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Description,
		&rec.MediaRef,
		&rec.Position.Lat,
		&rec.Position.Lng,
		&rec.CreatedAt,
	)
	return rec, err
}

func collectIncidents(rows pgx.Rows) ([]models.IncidentRecord, error) {
	defer rows.Close()

	records := make([]models.IncidentRecord, 0)
	for rows.Next() {
		rec, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}

// GetIncidentFromCache пытается получить запись из Redis. Промах - (nil, nil).
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error) {
	record := &models.IncidentRecord{}
	ok, err := r.getJSON(ctx, incidentCacheKey(id), record)
	if err != nil || !ok {
		return nil, err
	}
	return record, nil
}

// SetIncidentCache сохраняет запись в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, record *models.IncidentRecord) error {
	return r.setJSON(ctx, incidentCacheKey(record.ID), record)
}

// GetListFromCache возвращает закешированный список. Промах - (nil, nil).
func (r *IncidentRepository) GetListFromCache(ctx context.Context) ([]models.IncidentRecord, error) {
	records := make([]models.IncidentRecord, 0)
	ok, err := r.getJSON(ctx, incidentListCacheKey, &records)
	if err != nil || !ok {
		return nil, err
	}
	return records, nil
}

func (r *IncidentRepository) SetListCache(ctx context.Context, records []models.IncidentRecord) error {
	return r.setJSON(ctx, incidentListCacheKey, records)
}

// InvalidateListCache удаляет список из кеша. Записи неизменяемы, поэтому кеш по id не трогаем.
func (r *IncidentRepository) InvalidateListCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, incidentListCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident list cache: %w", err)
	}
	return nil
}

func (r *IncidentRepository) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

func (r *IncidentRepository) setJSON(ctx context.Context, key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testPool  *pgxpool.Pool
	testRedis *redis.Client
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pg, dsn, err := startPostgis(ctx)
	if err != nil {
		fmt.Println("cannot start postgis:", err)
		os.Exit(1)
	}
	rc, addr, err := startRedis(ctx)
	if err != nil {
		fmt.Println("cannot start redis:", err)
		_ = pg.Terminate(ctx)
		os.Exit(1)
	}

	code := func() int {
		mg, err := migrate.New("file://../../migrations", strings.Replace(dsn, "postgres://", "pgx5://", 1))
		if err != nil {
			fmt.Println("migrate.New:", err)
			return 1
		}
		if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("migrate.Up:", err)
			return 1
		}

		testPool, err = pgxpool.New(ctx, dsn)
		if err != nil {
			fmt.Println("pgxpool.New:", err)
			return 1
		}
		defer testPool.Close()

		testRedis = redis.NewClient(&redis.Options{Addr: addr})
		defer testRedis.Close()

		return m.Run()
	}()

	_ = rc.Terminate(ctx)
	_ = pg.Terminate(ctx)
	os.Exit(code)
}

func startPostgis(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "bodycam",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(90 * time.Second),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		return nil, "", err
	}
	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/bodycam?sslmode=disable", host, port.Port())
	return c, dsn, nil
}

func startRedis(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		return nil, "", err
	}
	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")
	return c, fmt.Sprintf("%s:%s", host, port.Port()), nil
}

func TestIncidentRepository_CreateGetList(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository(testPool, testRedis, time.Minute)

	record := &models.IncidentRecord{
		Title:       "Integration",
		Description: "angry driver",
		MediaRef:    "https://example.com/clip.mp4",
		Position:    models.Position{Lat: 53.35, Lng: -6.25},
	}
	require.NoError(t, repo.Create(ctx, record))
	require.NotEqual(t, uuid.Nil, record.ID)

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Title, got.Title)
	assert.InDelta(t, 53.35, got.Position.Lat, 1e-9)
	assert.InDelta(t, -6.25, got.Position.Lng, 1e-9)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	// три записи из seed-миграции плюс созданная
	assert.GreaterOrEqual(t, len(all), 4)

	within, err := repo.ListWithin(ctx, models.Bounds{
		SouthWest: models.Position{Lat: 51.3, Lng: -10.7},
		NorthEast: models.Position{Lat: 55.5, Lng: -5.3},
	})
	require.NoError(t, err)
	for _, r := range within {
		assert.InDelta(t, 53.4, r.Position.Lat, 2.2)
	}
	assert.GreaterOrEqual(t, len(within), 2)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIncidentRepository_Cache(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository(testPool, testRedis, time.Minute)

	miss, err := repo.GetListFromCache(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)

	records := []models.IncidentRecord{{ID: uuid.New(), Title: "cached"}}
	require.NoError(t, repo.SetListCache(ctx, records))

	hit, err := repo.GetListFromCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cached", hit[0].Title)

	require.NoError(t, repo.InvalidateListCache(ctx))
	miss, err = repo.GetListFromCache(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, repo.SetIncidentCache(ctx, &records[0]))
	one, err := repo.GetIncidentFromCache(ctx, records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, records[0].ID, one.ID)
}

func TestIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	store := NewIdempotencyStore(testRedis, time.Minute)
	key := uuid.NewString()

	ok, err := store.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Claim(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Release(ctx, key))
	ok, err = store.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
}

package testutil

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coachkit/draft-coach/internal/api"
	"github.com/coachkit/draft-coach/internal/config"
	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/narrative"
	"github.com/coachkit/draft-coach/internal/repository/memory"
	repoPostgres "github.com/coachkit/draft-coach/internal/repository/postgres"
	"github.com/coachkit/draft-coach/internal/service"
	"github.com/coachkit/draft-coach/internal/websocket"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_draft_coach"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&domain.Champion{},
		&domain.MetaRating{},
		&domain.Matchup{},
		&repoPostgres.PlayerPool{},
	)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		tdb.Container.Terminate(context.Background())
	}
}

// TestServer is a fully wired API server backed by the in-memory
// reference store.
type TestServer struct {
	Server   *httptest.Server
	Services *service.Services
	Hub      *websocket.Hub
}

// NewTestServer starts an HTTP test server with seeded reference data
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	repos := memory.NewSeededRepositories()
	services, err := service.NewServices(context.Background(), repos, narrative.NewTemplateGenerator(), cfg)
	if err != nil {
		t.Fatalf("failed to initialize services: %v", err)
	}

	hub := websocket.NewHub(services.Draft)
	go hub.Run()

	srv := httptest.NewServer(api.NewRouter(services, hub))

	ts := &TestServer{
		Server:   srv,
		Services: services,
		Hub:      hub,
	}

	t.Cleanup(func() {
		srv.Close()
		hub.Stop()
	})

	return ts
}

// URL returns the base URL of the test server
func (ts *TestServer) URL() string {
	return ts.Server.URL
}

// WSURL returns the websocket endpoint URL of the test server
func (ts *TestServer) WSURL() string {
	return "ws" + ts.Server.URL[len("http"):] + "/api/v1/ws"
}

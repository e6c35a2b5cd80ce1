package forum

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Coding-Mohamed/Forum/internal/models"
)

var testDB *gorm.DB

// TestMain starts one throwaway PostgreSQL container for the whole package.
func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("forum_test"),
		tcpostgres.WithUsername("forum"),
		tcpostgres.WithPassword("forum"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Thread{},
		&models.Comment{},
		&models.Vote{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("failed to migrate test database: %v", err)
	}

	testDB = db

	code := m.Run()

	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %v", err)
	}
	os.Exit(code)
}

// newTestService wipes all tables and returns a service over the shared
// test database.
func newTestService(t *testing.T) *Service {
	t.Helper()
	for _, table := range []string{"votes", "comments", "threads", "admins", "users"} {
		require.NoError(t, testDB.Exec("DELETE FROM "+table).Error)
	}
	return NewService(testDB, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustCreateThread(t *testing.T, svc *Service, authorID string) *models.Thread {
	t.Helper()
	thread, err := svc.CreateThread(context.Background(), "author-"+authorID, authorID,
		"A thread title", "Some thread content", "general")
	require.NoError(t, err)
	return thread
}

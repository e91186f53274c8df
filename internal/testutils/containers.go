//go:build integration
// +build integration

package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/linskybing/logistics-go/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgres returns a migrated PostgreSQL database. TEST_DB_DSN points at
// an existing server; otherwise a container is started for the test.
func SetupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		req := testcontainers.ContainerRequest{
			Image: "postgres:15",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_USER":     "test",
				"POSTGRES_DB":       "logistics",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
		}
		pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			t.Fatalf("start postgres: %v", err)
		}
		t.Cleanup(func() { _ = pg.Terminate(ctx) })

		host, err := pg.Host(ctx)
		if err != nil {
			t.Fatal(err)
		}
		port, err := pg.MappedPort(ctx, "5432")
		if err != nil {
			t.Fatal(err)
		}
		dsn = fmt.Sprintf("postgres://test:test@%s:%s/logistics?sslmode=disable", host, port.Port())
	}

	// retry db connect
	var gdb *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		t.Fatalf("connect postgres: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// MinioEndpoint describes a running MinIO server.
type MinioEndpoint struct {
	Endpoint  string
	AccessKey string
	SecretKey string
}

// SetupMinio starts a MinIO container for the test.
func SetupMinio(t *testing.T) MinioEndpoint {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		Cmd:          []string{"server", "/data"},
		Env:          map[string]string{"MINIO_ROOT_USER": "minioadmin", "MINIO_ROOT_PASSWORD": "minioadmin"},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start minio: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatal(err)
	}
	port, err := c.MappedPort(ctx, "9000")
	if err != nil {
		t.Fatal(err)
	}
	return MinioEndpoint{
		Endpoint:  fmt.Sprintf("%s:%s", host, port.Port()),
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	}
}

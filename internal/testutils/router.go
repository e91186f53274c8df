package testutils

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/api/middleware"
	"github.com/linskybing/logistics-go/internal/api/routes"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/config"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/storage"
)

// TestApp is a fully wired router over an in-memory database and object store.
type TestApp struct {
	Router   *gin.Engine
	Repos    *repository.Repos
	Services *application.Services
	Store    *storage.MemoryStore
}

func SetupRouter(t *testing.T) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.JwtSecret = "test-secret"
	config.TokenTTL = time.Hour
	middleware.Init()

	repos := repository.New(NewTestDB(t))
	store := storage.NewMemoryStore()
	svc := application.New(repos, store, nil)

	r := gin.New()
	routes.RegisterRoutes(r, svc, repos)
	return &TestApp{Router: r, Repos: repos, Services: svc, Store: store}
}

// Package apitest boots the full HTTP stack for route tests.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/adoption-tracker/internal/api/handlers"
	"github.com/linskybing/adoption-tracker/internal/api/middleware"
	"github.com/linskybing/adoption-tracker/internal/api/routes"
	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/application/scheduler"
	"github.com/linskybing/adoption-tracker/internal/config"
	"github.com/linskybing/adoption-tracker/internal/domain/user"
	"github.com/linskybing/adoption-tracker/internal/events"
	"github.com/linskybing/adoption-tracker/internal/metrics"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/internal/testutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer is the full HTTP stack over a private SQLite database.
type TestServer struct {
	Router   *gin.Engine
	DB       *gorm.DB
	Services *application.Services
	Hub      *events.Hub
	Registry *prometheus.Registry
}

func SetupRouter(t *testing.T, opts ...application.Option) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "test-secret"
	middleware.Init()

	conn := testutils.NewSqliteDB(t)
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)
	hub := events.NewHub(nil)

	opts = append([]application.Option{application.WithMetrics(m), application.WithPublisher(hub)}, opts...)
	svc := application.New(repository.NewRepositories(conn), opts...)
	sched := scheduler.NewScheduler(svc.Generator, time.Hour, scheduler.WithMetrics(m))

	r := gin.New()
	routes.RegisterRoutes(r, handlers.New(svc, sched, hub), reg)

	return &TestServer{Router: r, DB: conn, Services: svc, Hub: hub, Registry: reg}
}

// Token seeds a user with role and returns a bearer token for it.
func (s *TestServer) Token(t *testing.T, name string, role user.Role) string {
	t.Helper()
	u := testutils.SeedUser(t, s.DB, name, role)
	token, err := middleware.GenerateToken(u, time.Hour)
	require.NoError(t, err)
	return token
}

// Do sends a JSON request; an empty token sends no Authorization header.
func (s *TestServer) Do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

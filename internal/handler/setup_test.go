package handler

import (
	"testing"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/config"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/middleware"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/repository"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/service"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/testutil"
	"go.uber.org/zap"
)

// setupAPITest builds a full service stack on an isolated schema and
// registers the routes under test. Notifications and storage stay
// disabled, audits still write to the database.
func setupAPITest(t *testing.T) (*testutil.TestEnv, *Handlers) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: testutil.JWTSecret, Issuer: "test"},
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, cfg, zap.NewNop(), nil)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	api.GET("/dashboard", handlers.Dashboard.Overview)

	api.GET("/vehicles", handlers.Vehicle.List)
	api.POST("/vehicles", middleware.RequireRole("admin"), handlers.Vehicle.Create)
	api.DELETE("/vehicles/:number", middleware.RequireRole("admin"), handlers.Vehicle.Delete)

	api.GET("/production", handlers.Production.List)
	api.PUT("/production/:number/stations/:station", middleware.RequireRole("admin"), handlers.Production.UpdateStatus)

	api.GET("/requests", handlers.Request.List)
	api.POST("/requests", middleware.RequireRole("admin", "customer"), handlers.Request.Create)
	api.POST("/requests/:id/deliver", middleware.RequireRole("admin"), handlers.Request.Deliver)
	api.DELETE("/requests/:id", middleware.RequireRole("admin"), handlers.Request.Delete)

	api.GET("/users", middleware.RequireRole(), handlers.User.List)
	api.POST("/users", middleware.RequireRole(), handlers.User.Create)
	api.DELETE("/users/:id", middleware.RequireRole(), handlers.User.Delete)
	api.PUT("/users/:id/role", middleware.RequireRole(), handlers.User.UpdateRole)

	api.GET("/change-logs", middleware.RequireRole("admin"), handlers.ChangeLog.List)

	api.GET("/parts/:part_no/locations", handlers.PartLocation.Lookup)

	return &testutil.TestEnv{DB: db, Router: router, T: t}, handlers
}

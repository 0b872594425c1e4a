package handler

import (
	"net/http"
	"testing"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/testutil"
)

// TestDashboardSummaryCounts verifies the landing page cards reflect
// the seeded snapshot
func TestDashboardSummaryCounts(t *testing.T) {
	env, _ := setupAPITest(t)

	testutil.SeedVehicle(t, env.DB, "K9", "V1")
	testutil.SeedVehicle(t, env.DB, "K10", "V2")
	testutil.SeedRequest(t, env.DB, "req-1", nil)
	testutil.SeedRequest(t, env.DB, "req-2", func(r *entity.Request) {
		r.Status = entity.RequestStatusDelivered
	})

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/dashboard", nil, testutil.ViewerToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	if got := summary["total_vehicles"].(float64); got != 2 {
		t.Fatalf("expected 2 vehicles, got %v", got)
	}
	// K9 has 11 stations, K10 has 6, all seeded pending
	if got := summary["pending_stations"].(float64); got != 17 {
		t.Fatalf("expected 17 pending stations, got %v", got)
	}
	if got := summary["open_requests"].(float64); got != 1 {
		t.Fatalf("expected 1 open request, got %v", got)
	}

	types := data["types"].([]interface{})
	if len(types) != len(entity.VehicleTypes) {
		t.Fatalf("expected %d type groups, got %d", len(entity.VehicleTypes), len(types))
	}

	status := data["request_status"].(map[string]interface{})
	if status["open"].(float64) != 1 || status["delivered"].(float64) != 1 {
		t.Fatalf("unexpected request status distribution: %v", status)
	}
}

package handler

import (
	"net/http"
	"testing"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/testutil"
)

// TestProductionUpdateStatus verifies a station transition is stored
// and audited with the previous value
func TestProductionUpdateStatus(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	testutil.SeedVehicle(t, env.DB, "K9", "V1")

	body := map[string]interface{}{"status": "completed"}
	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/production/V1/stations/A03", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var row entity.ProductionStatus
	if err := env.DB.First(&row, "vehicle_number = ? AND station_code = ?", "V1", "A03").Error; err != nil {
		t.Fatalf("failed to load station row: %v", err)
	}
	if row.Status != entity.StationStatusCompleted {
		t.Fatalf("expected completed, got %s", row.Status)
	}

	var logEntry entity.ChangeLog
	if err := env.DB.First(&logEntry).Error; err != nil {
		t.Fatalf("expected a change log entry: %v", err)
	}
	if logEntry.OldValues["status"] != "pending" {
		t.Fatalf("expected old status pending in audit, got %v", logEntry.OldValues["status"])
	}
}

// TestProductionUpdateInvalidStatus verifies unknown statuses are
// rejected
func TestProductionUpdateInvalidStatus(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	testutil.SeedVehicle(t, env.DB, "K9", "V1")

	body := map[string]interface{}{"status": "done"}
	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/production/V1/stations/A01", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

// TestProductionUpdateUnknownStation verifies a missing row maps to 404
func TestProductionUpdateUnknownStation(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	body := map[string]interface{}{"status": "in_progress"}
	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/production/NOPE/stations/A01", body, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

// TestProductionListFilterByVehicle verifies the vehicle number filter
func TestProductionListFilterByVehicle(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.ViewerToken()

	testutil.SeedVehicle(t, env.DB, "K9", "V1")
	testutil.SeedVehicle(t, env.DB, "K10", "V2")

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/production?vehicle_number=V2", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	items := resp["data"].([]interface{})
	if len(items) != len(entity.StationLayouts["K10"]) {
		t.Fatalf("expected %d rows for V2, got %d", len(entity.StationLayouts["K10"]), len(items))
	}
}

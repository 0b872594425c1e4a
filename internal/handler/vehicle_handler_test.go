package handler

import (
	"net/http"
	"testing"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/testutil"
)

// TestVehicleCreateSeedsStations verifies that creating a vehicle also
// creates one pending station row per station in its type's layout
func TestVehicleCreateSeedsStations(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	body := map[string]interface{}{
		"vehicle_type":   "K9",
		"vehicle_number": "V1",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/vehicles", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var rows []entity.ProductionStatus
	if err := env.DB.Where("vehicle_number = ?", "V1").Find(&rows).Error; err != nil {
		t.Fatalf("failed to load station rows: %v", err)
	}
	if len(rows) != len(entity.StationLayouts["K9"]) {
		t.Fatalf("expected %d station rows, got %d", len(entity.StationLayouts["K9"]), len(rows))
	}
	for _, row := range rows {
		if row.Status != entity.StationStatusPending {
			t.Fatalf("expected pending status for %s, got %s", row.StationCode, row.Status)
		}
	}
}

// TestVehicleCreateDuplicateNumber verifies the unique constraint maps
// to a conflict response
func TestVehicleCreateDuplicateNumber(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	body := map[string]interface{}{
		"vehicle_type":   "K10",
		"vehicle_number": "V5",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/vehicles", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/vehicles", body, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d: %s", w.Code, w.Body.String())
	}
}

// TestVehicleCreateUnknownType verifies an unknown vehicle type is
// rejected before anything is stored
func TestVehicleCreateUnknownType(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	body := map[string]interface{}{
		"vehicle_type":   "K99",
		"vehicle_number": "V9",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/vehicles", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	env.DB.Model(&entity.Vehicle{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no vehicles stored, got %d", count)
	}
}

// TestVehicleCreateForbiddenForViewer verifies viewers cannot create
func TestVehicleCreateForbiddenForViewer(t *testing.T) {
	env, _ := setupAPITest(t)

	body := map[string]interface{}{
		"vehicle_type":   "K9",
		"vehicle_number": "V2",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/vehicles", body, testutil.ViewerToken())
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for viewer, got %d", w.Code)
	}
}

// TestVehicleDeleteRemovesStations verifies deletion removes the
// vehicle together with its station rows
func TestVehicleDeleteRemovesStations(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	testutil.SeedVehicle(t, env.DB, "K11", "V3")

	w := testutil.DoRequest(env.Router, http.MethodDelete, "/api/v1/vehicles/V3", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	env.DB.Model(&entity.ProductionStatus{}).Where("vehicle_number = ?", "V3").Count(&count)
	if count != 0 {
		t.Fatalf("expected station rows removed, %d remain", count)
	}
}

// TestVehicleListSortedNaturally verifies vehicles come back grouped by
// type with numeric aware ordering inside each type
func TestVehicleListSortedNaturally(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	testutil.SeedVehicle(t, env.DB, "K9", "V10")
	testutil.SeedVehicle(t, env.DB, "K9", "V2")
	testutil.SeedVehicle(t, env.DB, "K10", "V1")

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/vehicles", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	resp := testutil.ParseResponse(w)
	items := resp["data"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("expected 3 vehicles, got %d", len(items))
	}

	var numbers []string
	for _, item := range items {
		numbers = append(numbers, item.(map[string]interface{})["vehicle_number"].(string))
	}
	want := []string{"V2", "V10", "V1"}
	for i, n := range want {
		if numbers[i] != n {
			t.Fatalf("expected order %v, got %v", want, numbers)
		}
	}
}

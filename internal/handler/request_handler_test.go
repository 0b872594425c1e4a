package handler

import (
	"net/http"
	"testing"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/testutil"
)

// TestRequestPartRequiresPartNumber verifies part requests without a
// part number or quantity are rejected before any store call
func TestRequestPartRequiresPartNumber(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	body := map[string]interface{}{
		"vehicle_type":   "K9",
		"vehicle_number": "V1",
		"station_code":   "A01",
		"request_type":   "part",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without part number, got %d: %s", w.Code, w.Body.String())
	}

	body["part_number"] = "BOLT-100"
	w = testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without quantity, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	env.DB.Model(&entity.Request{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no requests stored, got %d", count)
	}

	body["qty"] = 4
	w = testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

// TestRequestStationIgnoresPartFields verifies station requests store
// no part data even when the client sends some
func TestRequestStationIgnoresPartFields(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	body := map[string]interface{}{
		"vehicle_type":   "K10",
		"vehicle_number": "V2",
		"station_code":   "A12",
		"request_type":   "station",
		"part_number":    "SHOULD-BE-DROPPED",
		"qty":            9,
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var stored entity.Request
	if err := env.DB.First(&stored).Error; err != nil {
		t.Fatalf("failed to load request: %v", err)
	}
	if stored.PartNumber != "" || stored.Qty != nil {
		t.Fatalf("expected part fields dropped, got part_number=%q qty=%v", stored.PartNumber, stored.Qty)
	}
}

// TestRequestCustomerSeesOwnOnly verifies customers only list their own
// requests while admins see everything
func TestRequestCustomerSeesOwnOnly(t *testing.T) {
	env, _ := setupAPITest(t)

	testutil.SeedRequest(t, env.DB, "req-1", func(r *entity.Request) { r.RequestedBy = "customer_a" })
	testutil.SeedRequest(t, env.DB, "req-2", func(r *entity.Request) { r.RequestedBy = "customer_b" })
	testutil.SeedRequest(t, env.DB, "req-3", func(r *entity.Request) { r.RequestedBy = "test_admin" })

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/requests", nil, testutil.CustomerToken("customer_a"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	items := resp["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected customer to see 1 request, got %d", len(items))
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/requests", nil, testutil.AdminToken())
	resp = testutil.ParseResponse(w)
	items = resp["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("expected admin to see 3 requests, got %d", len(items))
	}
}

// TestRequestDeliverOnce verifies open requests transition to delivered
// with a delivery date, and cannot be delivered twice
func TestRequestDeliverOnce(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	testutil.SeedRequest(t, env.DB, "req-10", nil)

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests/req-10/deliver", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored entity.Request
	if err := env.DB.First(&stored, "id = ?", "req-10").Error; err != nil {
		t.Fatalf("failed to load request: %v", err)
	}
	if stored.Status != entity.RequestStatusDelivered {
		t.Fatalf("expected delivered, got %s", stored.Status)
	}
	if stored.DeliveryDate == nil {
		t.Fatalf("expected delivery date to be set")
	}

	w = testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests/req-10/deliver", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on second deliver, got %d", w.Code)
	}
}

// TestRequestFilterByStatusAndSearch verifies query filters narrow the
// listing
func TestRequestFilterByStatusAndSearch(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	qty := 2
	testutil.SeedRequest(t, env.DB, "req-20", func(r *entity.Request) {
		r.RequestType = entity.RequestTypePart
		r.PartNumber = "BOLT-M8"
		r.Qty = &qty
	})
	testutil.SeedRequest(t, env.DB, "req-21", func(r *entity.Request) {
		r.Status = entity.RequestStatusDelivered
	})

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/requests?status=open&search=bolt", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	items := resp["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 filtered request, got %d", len(items))
	}
	got := items[0].(map[string]interface{})["id"].(string)
	if got != "req-20" {
		t.Fatalf("expected req-20, got %s", got)
	}
}

// TestRequestMutationsAudited verifies creating a request writes a
// change log entry
func TestRequestMutationsAudited(t *testing.T) {
	env, _ := setupAPITest(t)
	token := testutil.AdminToken()

	body := map[string]interface{}{
		"vehicle_type":   "K9",
		"vehicle_number": "V1",
		"station_code":   "A02",
		"request_type":   "station",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var logs []entity.ChangeLog
	if err := env.DB.Find(&logs).Error; err != nil {
		t.Fatalf("failed to load change logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 change log entry, got %d", len(logs))
	}
	if logs[0].ActionType != entity.ActionCreate || logs[0].EntityType != "request" {
		t.Fatalf("unexpected audit entry: %s %s", logs[0].ActionType, logs[0].EntityType)
	}
	if logs[0].Username != "test_admin" {
		t.Fatalf("expected actor test_admin, got %s", logs[0].Username)
	}
}

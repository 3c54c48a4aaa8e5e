package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/stockplan/pkg/application/services"
	"github.com/vsinha/stockplan/pkg/domain/entities"
	"github.com/vsinha/stockplan/pkg/infrastructure/repositories/memory"
)

func newTestServer(t *testing.T) (*Server, *memory.DemandHistoryRepository) {
	t.Helper()
	repo := memory.NewDemandHistoryRepository()
	planning := services.NewPlanningService(repo, zap.NewNop())
	srv := New(planning, zap.NewNop())
	srv.SetReady(true)
	return srv, repo
}

func postJSON(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_OptimizeSafetyStock(t *testing.T) {
	srv, repo := newTestServer(t)

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.LoadRecords("WIDGET-1", []entities.DemandRecord{
		entities.NewDemandRecord(date, 8),
		entities.NewDemandRecord(date.AddDate(0, 0, 1), 12),
		entities.NewDemandRecord(date.AddDate(0, 0, 2), 10),
		entities.NewDemandRecord(date.AddDate(0, 0, 3), 10),
	})

	w := postJSON(t, srv, "/api/v1/tools/optimize-safety-stock",
		`{"item_id": "WIDGET-1", "desired_service_level": 0.95}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ItemID      string  `json:"item_id"`
			SafetyStock float64 `json:"safety_stock"`
			DataPoints  int     `json:"data_points"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data.SafetyStock != 2.77 {
		t.Errorf("Expected safety stock 2.77, got %v", resp.Data.SafetyStock)
	}
	if resp.Data.DataPoints != 4 {
		t.Errorf("Expected 4 data points, got %d", resp.Data.DataPoints)
	}
}

func TestServer_OptimizeSafetyStock_BindingErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	testCases := []struct {
		name string
		body string
	}{
		{"missing item_id", `{"desired_service_level": 0.95}`},
		{"missing service level", `{"item_id": "WIDGET-1"}`},
		{"service level above 1", `{"item_id": "WIDGET-1", "desired_service_level": 1.5}`},
		{"not json", `not json`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, srv, "/api/v1/tools/optimize-safety-stock", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestServer_OptimizeSafetyStock_UpstreamEmpty(t *testing.T) {
	srv, _ := newTestServer(t)

	w := postJSON(t, srv, "/api/v1/tools/optimize-safety-stock",
		`{"item_id": "UNKNOWN", "desired_service_level": 0.95}`)

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected 502 for missing upstream data, got %d: %s", w.Code, w.Body.String())
	}
}

func TestServer_SimulateLeadTime(t *testing.T) {
	srv, _ := newTestServer(t)

	w := postJSON(t, srv, "/api/v1/tools/simulate-lead-time", `{
		"item_id": "WIDGET-1",
		"lead_times": [5, 7, 6],
		"demand_data": [
			{"date": "2024-03-01", "quantity": 10},
			{"date": "2024-03-02", "quantity": 12},
			{"date": "2024-03-03", "quantity": 8}
		]
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			AverageLeadTime   float64 `json:"average_lead_time"`
			StdLeadTime       float64 `json:"std_lead_time"`
			SimulationResults []struct {
				Date           string  `json:"date"`
				InventoryLevel float64 `json:"inventory_level"`
			} `json:"simulation_results"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data.AverageLeadTime != 6 {
		t.Errorf("Expected average lead time 6.00, got %v", resp.Data.AverageLeadTime)
	}
	if len(resp.Data.SimulationResults) != 30 {
		t.Errorf("Expected 30 simulated days, got %d", len(resp.Data.SimulationResults))
	}
}

func TestServer_SimulateLeadTime_EmptyLeadTimes(t *testing.T) {
	srv, _ := newTestServer(t)

	w := postJSON(t, srv, "/api/v1/tools/simulate-lead-time", `{
		"item_id": "WIDGET-1",
		"lead_times": [],
		"demand_data": [{"date": "2024-03-01", "quantity": 10}]
	}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for empty lead times, got %d: %s", w.Code, w.Body.String())
	}
}

func TestServer_SimulateLeadTime_MissingQuantity(t *testing.T) {
	srv, _ := newTestServer(t)

	w := postJSON(t, srv, "/api/v1/tools/simulate-lead-time", `{
		"item_id": "WIDGET-1",
		"lead_times": [5],
		"demand_data": [{"date": "2024-03-01"}]
	}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422 for missing quantity, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "quantity") {
		t.Errorf("Expected offending field in message, got %s", w.Body.String())
	}
}

func TestServer_Healthz(t *testing.T) {
	repo := memory.NewDemandHistoryRepository()
	planning := services.NewPlanningService(repo, zap.NewNop())
	srv := New(planning, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 before ready, got %d", w.Code)
	}

	srv.SetReady(true)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 after ready, got %d", w.Code)
	}
}

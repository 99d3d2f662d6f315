package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmatrade/internal/model"
	"pharmatrade/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSummaryService struct {
	queries  []service.SummaryQuery
	result   model.SummaryResult
	overview model.TradeOverview
	err      error
}

func (f *fakeSummaryService) GetSummary(_ context.Context, q service.SummaryQuery) (model.SummaryResult, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return model.SummaryResult{}, f.err
	}
	res := f.result
	res.Type = q.Type
	return res, nil
}

func (f *fakeSummaryService) GetOverview(_ context.Context, q service.SummaryQuery) (model.TradeOverview, error) {
	f.queries = append(f.queries, q)
	return f.overview, f.err
}

func (f *fakeSummaryService) InvalidateCache() {}

type fakeShipmentService struct {
	requests []service.ImportShipmentsRequest
	list     []model.Shipment
	total    int64
	err      error
}

func (f *fakeShipmentService) ListShipments(_ context.Context, page, limit int) ([]model.Shipment, int64, error) {
	return f.list, f.total, f.err
}

func (f *fakeShipmentService) ImportShipments(_ context.Context, req service.ImportShipmentsRequest) (service.ImportShipmentsResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return service.ImportShipmentsResponse{}, f.err
	}
	return service.ImportShipmentsResponse{Inserted: len(req.Shipments)}, nil
}

func setupRouter(summaries service.SummaryService, shipments service.ShipmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSummaryHandler(summaries).RegisterRoutes(r.Group(""))
	NewShipmentHandler(shipments).RegisterRoutes(r.Group(""))
	return r
}

func doRequest(r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestGetSummaryQueryParameters(t *testing.T) {
	summaries := &fakeSummaryService{}
	r := setupRouter(summaries, &fakeShipmentService{})

	w, body := doRequest(r, http.MethodGet,
		"/api/supplier-customer-summary?search=insulin&limit=500&type=geographic&start_date=2024-01-01T00:00:00Z", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["status"])

	require.Len(t, summaries.queries, 1)
	q := summaries.queries[0]
	assert.Equal(t, "insulin", q.Search)
	assert.Equal(t, 100, q.Limit)
	assert.Equal(t, "geographic", q.Type)
	require.NotNil(t, q.StartDate)
	assert.Equal(t, 2024, q.StartDate.Year())
	assert.Nil(t, q.EndDate)

	data := body["data"].(map[string]any)
	assert.Contains(t, data, "topCountries")
	assert.NotContains(t, data, "topSuppliers")
}

func TestGetSummaryDefaults(t *testing.T) {
	summaries := &fakeSummaryService{}
	r := setupRouter(summaries, &fakeShipmentService{})

	w, body := doRequest(r, http.MethodGet, "/api/supplier-customer-summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	q := summaries.queries[0]
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, "supplier-customer", q.Type)

	data := body["data"].(map[string]any)
	suppliers, ok := data["topSuppliers"].([]any)
	require.True(t, ok)
	assert.Empty(t, suppliers)
	summary := data["summary"].(map[string]any)
	assert.Equal(t, float64(0), summary["averageValue"])
}

func TestGetSummaryErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "bad start date", target: "/api/supplier-customer-summary?start_date=yesterday", status: http.StatusBadRequest},
		{name: "bad end date", target: "/api/trade-overview?end_date=2024-13-01", status: http.StatusBadRequest},
		{name: "bad type", target: "/api/supplier-customer-summary?type=product",
			err: fmt.Errorf("%w: %q", service.ErrInvalidAnalysisType, "product"), status: http.StatusBadRequest},
		{name: "inverted window", target: "/api/trade-overview", err: service.ErrInvalidDateRange, status: http.StatusBadRequest},
		{name: "store down", target: "/api/supplier-customer-summary", err: errors.New("dial tcp: refused"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&fakeSummaryService{err: tt.err}, &fakeShipmentService{})

			w, body := doRequest(r, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "error", body["status"])
			assert.NotContains(t, body["error"], "dial tcp")
		})
	}
}

func TestGetOverview(t *testing.T) {
	summaries := &fakeSummaryService{overview: model.TradeOverview{
		SupplierCustomer: model.SummaryResult{Type: model.AnalysisSupplierCustomer},
		Geographic:       model.SummaryResult{Type: model.AnalysisGeographic},
	}}
	r := setupRouter(summaries, &fakeShipmentService{})

	w, body := doRequest(r, http.MethodGet, "/api/trade-overview?search=amoxicillin&limit=3", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 3, summaries.queries[0].Limit)
	data := body["data"].(map[string]any)
	assert.Contains(t, data["supplierCustomer"], "topSuppliers")
	assert.Contains(t, data["geographic"], "topCountries")
}

func TestImportShipments(t *testing.T) {
	shipments := &fakeShipmentService{}
	r := setupRouter(&fakeSummaryService{}, shipments)

	w, body := doRequest(r, http.MethodPost, "/api/shipments", `{"shipments":[
		{"supplier_name":"Cipla Ltd","buyer_name":"Foo Inc","country_of_destination":"USA","total_value_usd":1250.5},
		{"supplier_name":"Lupin Ltd","buyer_name":"N/A","country_of_destination":"UK","total_value_usd":"1,000"}
	]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["inserted"])

	require.Len(t, shipments.requests, 1)
	req := shipments.requests[0]
	assert.Equal(t, service.RawAmount("1250.5"), req.Shipments[0].TotalValueUSD)
	assert.Equal(t, service.RawAmount("1,000"), req.Shipments[1].TotalValueUSD)
}

func TestImportShipmentsRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{name: "malformed json", body: `{"shipments":`},
		{name: "missing list", body: `{}`},
		{name: "boolean amount", body: `{"shipments":[{"total_value_usd":true}]}`},
		{name: "empty list", body: `{"shipments":[]}`, err: fmt.Errorf("%w: at least one shipment is required", service.ErrInvalidImport)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&fakeSummaryService{}, &fakeShipmentService{err: tt.err})

			w, body := doRequest(r, http.MethodPost, "/api/shipments", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", body["status"])
		})
	}
}

func TestListShipments(t *testing.T) {
	shipments := &fakeShipmentService{
		list:  []model.Shipment{{SupplierName: "Cipla Ltd", TotalValueUSD: "100"}},
		total: 41,
	}
	r := setupRouter(&fakeSummaryService{}, shipments)

	w, body := doRequest(r, http.MethodGet, "/api/shipments?page=2&limit=20", "")
	require.Equal(t, http.StatusOK, w.Code)

	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(41), meta["total"])
	assert.Equal(t, float64(3), meta["total_pages"])
	assert.Len(t, body["data"], 1)
}

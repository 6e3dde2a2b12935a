package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"erpdash/config"
	"erpdash/extractor"
	"erpdash/models"
	"erpdash/services"
	"erpdash/store"
)

type noopWriter struct{}

func (noopWriter) Write(*models.Snapshot) error { return nil }

type testEnv struct {
	router  *gin.Engine
	store   *store.SnapshotStore
	reports config.ReportsConfig
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	reportsCfg := config.ReportsConfig{
		Dir:           dir,
		CSVDir:        filepath.Join(dir, "csv"),
		RetentionDays: 30,
	}
	require.NoError(t, os.MkdirAll(reportsCfg.CSVDir, 0755))

	st := store.New()
	refresher := services.NewRefresher(extractor.NewDemoSource(), st, noopWriter{}, nil, zap.NewNop())
	query := services.NewQuery(st, refresher, nil)

	router := gin.New()
	NewDashboard(query, refresher, reportsCfg, zap.NewNop()).Register(router)

	return &testEnv{router: router, store: st, reports: reportsCfg}
}

func (e *testEnv) do(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	e.router.ServeHTTP(w, req)
	return w
}

func publishedSnapshot() *models.Snapshot {
	return models.NewSnapshot(
		[]models.PurchaseOrder{{PoID: "PO0001", Status: models.StatusPending, Amount: 100}},
		[]models.ProductionBatch{{ProductionID: "PROD0001", Status: models.StatusCompleted, Quantity: 10}},
		[]models.PackingRecord{{PackingID: "PACK0001", Status: models.StatusCompleted, Quantity: 5}},
		[]models.ShipmentRecord{{ShipmentID: "SHIP0001", Status: models.StatusDelivered, Quantity: 3}},
		time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC),
	)
}

func TestGetSummary(t *testing.T) {
	env := newTestEnv(t)

	t.Run("404 before first publish", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/summary")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"No data available"}`, w.Body.String())
	})

	t.Run("200 after publish", func(t *testing.T) {
		env.store.Publish(publishedSnapshot())

		w := env.do(http.MethodGet, "/api/summary")
		require.Equal(t, http.StatusOK, w.Code)

		var summary models.Summary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		require.Len(t, summary.Departments, 4)
		assert.Equal(t, "Purchase", summary.Departments[0].Department)
		assert.Equal(t, 1, summary.Departments[0].TotalRecords)
	})
}

func TestGetDepartment(t *testing.T) {
	env := newTestEnv(t)
	env.store.Publish(publishedSnapshot())

	t.Run("valid department", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/department/purchase")
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.DepartmentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("invalid department", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/department/finance")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetDepartmentNoData(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/department/shipment")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTriggerRefresh(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/refresh")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"Refresh initiated"}`, w.Body.String())

	// The trigger is fire-and-forget; the outcome shows up in the store.
	require.Eventually(t, func() bool {
		_, err := env.store.Current()
		return err == nil
	}, time.Second, 5*time.Millisecond)
}

func TestDownloadReport(t *testing.T) {
	env := newTestEnv(t)

	t.Run("invalid type", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/download/pdf")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing artifact", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/download/excel")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("latest workbook served as attachment", func(t *testing.T) {
		path := filepath.Join(env.reports.Dir, "daily_report.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("workbook"), 0644))

		w := env.do(http.MethodGet, "/api/download/excel")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "daily_report.xlsx")
	})

	t.Run("latest CSV served", func(t *testing.T) {
		path := filepath.Join(env.reports.CSVDir, "purchase_data.csv")
		require.NoError(t, os.WriteFile(path, []byte("po_id\n"), 0644))

		w := env.do(http.MethodGet, "/api/download/purchase_csv")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Nil(t, resp.LastUpdate)

	env.store.Publish(publishedSnapshot())
	w = env.do(http.MethodGet, "/health")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.LastUpdate)
}

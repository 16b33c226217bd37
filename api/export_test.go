package api

import (
	"net/http/httptest"
	"testing"

	"moneymap/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportRouter(st store.ExpenseStore, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExportHandler(st)
	r := gin.New()
	g := r.Group("", setUserIDMiddleware(userID))
	g.GET("/export/csv", h.ExportCSV)
	g.GET("/export/json", h.ExportJSON)
	g.GET("/export/excel", h.ExportExcel)
	return r
}

func TestExportCSV(t *testing.T) {
	st := store.NewMemoryStore()
	seedExpense(t, st, 1, 4250, "Rent", "2024-03-01")
	seedExpense(t, st, 1, 1050, "Food", "2024-03-02")
	seedExpense(t, st, 2, 100, "Other", "2024-03-01")

	router := newExportRouter(st, 1)
	req := httptest.NewRequest("GET", "/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	body := w.Body.String()
	assert.Contains(t, body, "ID,Amount,Category,Note,Date,Created At")
	assert.Contains(t, body, "42.50,Rent")
	assert.Contains(t, body, "10.50,Food")
	// other users' rows are not exported
	assert.NotContains(t, body, "Other")
}

func TestExportJSON(t *testing.T) {
	st := store.NewMemoryStore()
	seedExpense(t, st, 1, 4250, "Rent", "2024-03-01")
	seedExpense(t, st, 1, 1050, "Food", "2024-03-02")

	router := newExportRouter(st, 1)
	req := httptest.NewRequest("GET", "/export/json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"total_count":2`)
	assert.Contains(t, w.Body.String(), `"total_amount":53.00`)
}

func TestExportExcel(t *testing.T) {
	st := store.NewMemoryStore()
	seedExpense(t, st, 1, 4250, "Rent", "2024-03-01")

	router := newExportRouter(st, 1)
	req := httptest.NewRequest("GET", "/export/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	// xlsx files are zip archives
	assert.Equal(t, "PK", w.Body.String()[:2])
}

func TestExportUnauthenticated(t *testing.T) {
	router := newExportRouter(store.NewMemoryStore(), 0)
	for _, path := range []string{"/export/csv", "/export/json", "/export/excel"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 401, w.Code, path)
	}
}

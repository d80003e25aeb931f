package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prodcheck/internal/config"
	"prodcheck/internal/database"
	"prodcheck/internal/logger"
	"prodcheck/internal/models"
	"prodcheck/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupValidationRouter(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.New("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{MaxBatchSize: 100, LogLevel: "error"}
	log := logger.New(cfg.LogLevel)
	handler := NewValidationHandler(db.DB, validation.New(cfg, log), cfg, log)

	router := gin.New()
	router.POST("/api/v1/validate", handler.Validate)
	return router, db
}

func productRecord(productID int) map[string]interface{} {
	return map[string]interface{}{
		"brand":             "Acme Foods",
		"title":             "Organic Creamy Peanut Butter",
		"description":       "Stone-ground peanut butter with sea salt.",
		"image":             "http://example.com/peanut-butter.jpg",
		"images":            []interface{}{"http://example.com/peanut-butter.jpg"},
		"retail_price":      "3.99",
		"final_price":       "3.49",
		"url":               "http://example.com/products/peanut-butter",
		"product_id":        productID,
		"category":          "Pantry",
		"sales_size":        "16 oz",
		"availability":      "in_stock",
		"Buzzwords":         []interface{}{"organic"},
		"nutrition":         nil,
		"ingredients":       nil,
		"country_of_origin": nil,
	}
}

func postRecords(t *testing.T, router *gin.Engine, records interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(records)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidateEndpoint(t *testing.T) {
	t.Run("valid batch stores a clean report", func(t *testing.T) {
		router, db := setupValidationRouter(t)

		w := postRecords(t, router, []interface{}{productRecord(1), productRecord(2)})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				ReportID string               `json:"report_id"`
				Valid    bool                 `json:"valid"`
				Total    int                  `json:"total"`
				Failures []validation.Failure `json:"failures"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Data.Valid)
		assert.Equal(t, 2, resp.Data.Total)
		assert.Empty(t, resp.Data.Failures)

		var report models.ValidationReport
		require.NoError(t, db.DB.First(&report, "id = ?", resp.Data.ReportID).Error)
		assert.True(t, report.Valid)
		assert.Equal(t, 2, report.TotalRecords)
		assert.Zero(t, report.InvalidCount)
	})

	t.Run("duplicate id yields one indexed issue", func(t *testing.T) {
		router, db := setupValidationRouter(t)

		w := postRecords(t, router, []interface{}{productRecord(1), productRecord(1), productRecord(2)})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				ReportID string               `json:"report_id"`
				Valid    bool                 `json:"valid"`
				Failures []validation.Failure `json:"failures"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Data.Valid)
		require.Len(t, resp.Data.Failures, 1)
		assert.Equal(t, 2, resp.Data.Failures[0].Index)
		assert.Contains(t, resp.Data.Failures[0].Reason, "Duplicate product_id")

		var issues []models.ValidationIssue
		require.NoError(t, db.DB.Where("report_id = ?", resp.Data.ReportID).Find(&issues).Error)
		require.Len(t, issues, 1)
		assert.Equal(t, 2, issues[0].RecordIndex)
		assert.Equal(t, models.IssueSeverityHigh, issues[0].Severity)
		assert.False(t, issues[0].IsResolved)
	})

	t.Run("non-array body is rejected", func(t *testing.T) {
		router, _ := setupValidationRouter(t)

		w := postRecords(t, router, map[string]interface{}{"not": "an array"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized batch is rejected", func(t *testing.T) {
		router, _ := setupValidationRouter(t)

		records := make([]interface{}, 101)
		for i := range records {
			records[i] = productRecord(i)
		}
		w := postRecords(t, router, records)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

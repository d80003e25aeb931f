package handlers

import (
	"net/http"

	"prodcheck/internal/config"
	"prodcheck/internal/logger"
	"prodcheck/internal/models"
	"prodcheck/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidationHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	config    *config.Config
	logger    *logger.Logger
}

func NewValidationHandler(db *gorm.DB, validator *validation.Validator, cfg *config.Config, logger *logger.Logger) *ValidationHandler {
	return &ValidationHandler{
		db:        db,
		validator: validator,
		config:    cfg,
		logger:    logger,
	}
}

// Validate runs a batch of scraped product records through the validator and
// stores the outcome as a report with one issue per invalid record.
func (h *ValidationHandler) Validate(c *gin.Context) {
	var records []interface{}
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a JSON array of product records"})
		return
	}

	if len(records) > h.config.MaxBatchSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Batch exceeds maximum size"})
		return
	}

	result := h.validator.ValidateBatch(records)

	report := models.ValidationReport{
		Source:       "api",
		TotalRecords: result.Total,
		InvalidCount: len(result.Failures),
		Valid:        result.Valid,
	}
	if err := h.db.Create(&report).Error; err != nil {
		h.logger.Error("Failed to store validation report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store validation report"})
		return
	}

	if len(result.Failures) > 0 {
		issues := make([]models.ValidationIssue, 0, len(result.Failures))
		for _, failure := range result.Failures {
			issues = append(issues, models.ValidationIssue{
				ReportID:    &report.ID,
				RecordIndex: failure.Index,
				Severity:    models.IssueSeverityHigh,
				Explanation: failure.Reason,
			})
		}
		if err := h.db.Create(&issues).Error; err != nil {
			h.logger.Error("Failed to store validation issues: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store validation issues"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"report_id": report.ID,
			"valid":     result.Valid,
			"total":     result.Total,
			"failures":  result.Failures,
		},
	})
}

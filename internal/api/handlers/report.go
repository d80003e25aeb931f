package handlers

import (
	"net/http"
	"strconv"

	"prodcheck/internal/logger"
	"prodcheck/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportHandler struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewReportHandler(db *gorm.DB, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		db:     db,
		logger: logger,
	}
}

func (h *ReportHandler) List(c *gin.Context) {
	var reports []models.ValidationReport

	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	// Filters
	valid := c.Query("valid")
	source := c.Query("source")

	query := h.db.Model(&models.ValidationReport{})

	if valid != "" {
		if valid == "true" {
			query = query.Where("valid = ?", true)
		} else if valid == "false" {
			query = query.Where("valid = ?", false)
		}
	}

	if source != "" {
		query = query.Where("source = ?", source)
	}

	var total int64
	query.Count(&total)

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": reports,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *ReportHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var report models.ValidationReport
	if err := h.db.Preload("Issues").First(&report, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

package handler

import (
	"database/sql"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"prodcheck/internal/logger"
	"prodcheck/internal/validation"
)

var (
	db      *sql.DB
	dbMutex sync.Mutex
)

// initDB lazily opens the Postgres connection for serverless invocations.
func initDB() error {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	if db != nil {
		return nil // Already initialized
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil // Persistence disabled
	}

	var err error
	db, err = sql.Open("postgres", databaseURL)
	if err != nil {
		return err
	}

	if err = db.Ping(); err != nil {
		db = nil
		return err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS validation_failures (
		id SERIAL PRIMARY KEY,
		record_index INTEGER NOT NULL,
		reason TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);`)
	return err
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/api/validate", validateProducts)

	router.ServeHTTP(w, r)
}

func validateProducts(c *gin.Context) {
	var records []interface{}
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a JSON array of product records"})
		return
	}

	validator := validation.New(nil, logger.New(os.Getenv("LOG_LEVEL")))
	result := validator.ValidateBatch(records)

	if len(result.Failures) > 0 {
		if err := initDB(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect to database"})
			return
		}
		if db != nil {
			for _, failure := range result.Failures {
				if _, err := db.Exec(
					`INSERT INTO validation_failures (record_index, reason) VALUES ($1, $2)`,
					failure.Index, failure.Reason,
				); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store validation failures"})
					return
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    result.Valid,
		"total":    result.Total,
		"failures": result.Failures,
	})
}

package processors

import (
	"context"
	"time"

	"prodcheck/internal/config"
	"prodcheck/internal/database"
	"prodcheck/internal/events"
	"prodcheck/internal/logger"
	"prodcheck/internal/models"
	"prodcheck/internal/validation"

	"github.com/spf13/cast"
)

// Event is one message from the scraper pipeline. For product.scraped
// events, Data holds the raw product record.
type Event struct {
	Type      string                 `json:"type"`
	ProductID string                 `json:"product_id"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// EventProcessor validates scraped products as they stream in. One processor
// owns one seen-ID set, so the stream it consumes forms a single batch for
// uniqueness purposes.
type EventProcessor struct {
	config    *config.Config
	logger    *logger.Logger
	db        *database.Database
	validator *validation.Validator
	publisher *events.Publisher
	seen      *validation.IDSet
	processed int
}

func NewEventProcessor(cfg *config.Config, logger *logger.Logger, db *database.Database, publisher *events.Publisher) *EventProcessor {
	return &EventProcessor{
		config:    cfg,
		logger:    logger,
		db:        db,
		validator: validation.New(cfg, logger),
		publisher: publisher,
		seen:      validation.NewIDSet(),
	}
}

func (ep *EventProcessor) Process(event Event) error {
	switch event.Type {
	case "product.scraped":
		return ep.processScraped(event)
	default:
		ep.logger.Debug("Ignoring event type %s", event.Type)
		return nil
	}
}

func (ep *EventProcessor) processScraped(event Event) error {
	ep.processed++

	valid, reason := ep.validator.ValidateRecord(event.Data, ep.seen)

	product := productFromRecord(event.Data)
	product.IsValid = valid
	if !valid {
		product.LastReason = &reason
	}
	if err := ep.db.DB.Create(&product).Error; err != nil {
		return err
	}

	if valid {
		ep.logger.Debug("Product %v is valid", event.Data["product_id"])
		return nil
	}

	ep.logger.Warn("Invalid product at position %d: %s", ep.processed, reason)

	issue := models.ValidationIssue{
		RecordIndex: ep.processed,
		Severity:    models.IssueSeverityHigh,
		Explanation: reason,
	}
	if err := ep.db.DB.Create(&issue).Error; err != nil {
		return err
	}

	if ep.publisher != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ep.publisher.PublishInvalid(ctx, event.Data["product_id"], reason); err != nil {
			ep.logger.Error("Failed to publish invalid-product event: %v", err)
		}
	}

	return nil
}

// productFromRecord lifts the queryable columns out of a raw record. Fields
// of the wrong type are left null rather than coerced; validation already
// reported them.
func productFromRecord(record map[string]interface{}) models.Product {
	product := models.Product{Payload: record}

	if record["product_id"] != nil {
		if id, err := cast.ToInt64E(record["product_id"]); err == nil {
			product.ProductID = &id
		}
	}
	if brand, ok := record["brand"].(string); ok {
		product.Brand = &brand
	}
	if title, ok := record["title"].(string); ok {
		product.Title = &title
	}
	if category, ok := record["category"].(string); ok {
		product.Category = &category
	}
	if url, ok := record["url"].(string); ok {
		product.URL = &url
	}

	return product
}

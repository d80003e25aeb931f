package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a scraped product record as stored by the worker. The raw
// payload is kept verbatim so a record can be revalidated later; the indexed
// columns are lifted out of it for querying.
type Product struct {
	ID         string                 `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID  *int64                 `json:"product_id"`
	Brand      *string                `json:"brand"`
	Title      *string                `json:"title"`
	Category   *string                `json:"category"`
	URL        *string                `json:"url"`
	IsValid    bool                   `json:"is_valid" gorm:"default:false"`
	LastReason *string                `json:"last_reason"`
	Payload    map[string]interface{} `json:"payload" gorm:"serializer:json"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

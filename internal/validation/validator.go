package validation

import (
	"strings"

	"prodcheck/internal/config"
	"prodcheck/internal/logger"
)

// Validator runs the fixed check sequence against scraped product records.
// It is stateless; the only cross-record state is the IDSet threaded through
// ValidateRecord by the caller.
type Validator struct {
	config *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config, logger *logger.Logger) *Validator {
	return &Validator{
		config: cfg,
		logger: logger,
	}
}

// ValidateRecord applies the checks in order — structure, schema, images,
// URL format, product_id uniqueness, duplicate images — stopping at the
// first failure. seen is shared across the whole batch and is mutated by the
// uniqueness check.
//
// The price-consistency rule (CheckPriceConsistency) is intentionally not in
// this sequence.
func (v *Validator) ValidateRecord(data interface{}, seen *IDSet) (bool, string) {
	v.logger.Debug("Validating product: %+v", data)

	if !v.CheckStructure(data) {
		return false, "Invalid product data structure"
	}
	rec, _ := asRecord(data)

	if ok, violations := v.CheckSchema(rec); !ok {
		return false, strings.Join(violations, "; ")
	}

	if ok, reason := v.CheckImages(rec); !ok {
		return false, reason
	}

	if ok, reason := v.CheckURLFormat(rec); !ok {
		return false, reason
	}

	if ok, reason := v.CheckProductIDUniqueness(rec, seen); !ok {
		return false, reason
	}

	if ok, reason := v.CheckDuplicateImages(rec); !ok {
		return false, reason
	}

	return true, "Product data is valid"
}

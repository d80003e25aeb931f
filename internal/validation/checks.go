package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var urlPattern = regexp.MustCompile(`^https?://\S+$`)

// IDSet tracks product IDs already seen within one batch. Keys hold the raw
// decoded values, so two records that both lack a product_id collide on null
// the same way two records with the same numeric ID do.
type IDSet struct {
	seen map[interface{}]struct{}
}

func NewIDSet() *IDSet {
	return &IDSet{seen: make(map[interface{}]struct{})}
}

func (s *IDSet) Has(id interface{}) bool {
	_, ok := s.seen[id]
	return ok
}

func (s *IDSet) Add(id interface{}) {
	s.seen[id] = struct{}{}
}

func (s *IDSet) Len() int {
	return len(s.seen)
}

// CheckStructure reports whether data is a product mapping carrying all
// required keys. Presence only, values are not inspected here.
func (v *Validator) CheckStructure(data interface{}) bool {
	rec, ok := asRecord(data)
	if !ok {
		return false
	}
	for _, key := range requiredKeys {
		if _, ok := rec[key]; !ok {
			return false
		}
	}
	return true
}

func asRecord(data interface{}) (Record, bool) {
	switch m := data.(type) {
	case Record:
		return m, true
	case map[string]interface{}:
		return Record(m), true
	}
	return nil, false
}

// CheckSchema validates presence and type of every expected field. Unlike
// the other checks it does not stop at the first problem: all violations are
// returned, in schema order.
func (v *Validator) CheckSchema(rec Record) (bool, []string) {
	var violations []string
	for _, field := range expectedSchema {
		value, ok := rec[field.name]
		if !ok {
			violations = append(violations, fmt.Sprintf("Missing key '%s' in product data.", field.name))
			continue
		}
		if !field.matches(value) {
			violations = append(violations, fmt.Sprintf("Key '%s' has incorrect type. Expected type: %s, Actual type: %s",
				field.name, field.expected(), typeName(value)))
		}
	}
	if len(violations) > 0 {
		return false, violations
	}
	return true, nil
}

// CheckPriceConsistency passes unless both selling_price and original_price
// are present and the selling price exceeds the original. Note: this rule
// reads selling_price/original_price, not the schema's retail_price and
// final_price pair.
func (v *Validator) CheckPriceConsistency(rec Record) bool {
	selling, sellingOK := rec["selling_price"]
	original, originalOK := rec["original_price"]
	if !sellingOK || !originalOK || selling == nil || original == nil {
		return true
	}

	sellingVal, sellingErr := cast.ToFloat64E(selling)
	originalVal, originalErr := cast.ToFloat64E(original)
	if sellingErr != nil || originalErr != nil {
		// Non-numeric prices compare as text.
		return cast.ToString(selling) <= cast.ToString(original)
	}
	return sellingVal <= originalVal
}

// CheckImages fails when the image field is null or the images list holds no
// entry that is a string starting with http.
func (v *Validator) CheckImages(rec Record) (bool, string) {
	if rec["image"] == nil {
		return false, "Image key cannot be null"
	}
	images, _ := rec["images"].([]interface{})
	for _, img := range images {
		if s, ok := img.(string); ok && strings.HasPrefix(s, "http") {
			return true, ""
		}
	}
	return false, "Images list should contain at least one URL"
}

// CheckURLFormat passes absent URLs; a present one must match
// http(s)://<no whitespace>.
func (v *Validator) CheckURLFormat(rec Record) (bool, string) {
	value, ok := rec["url"]
	if !ok || value == nil {
		return true, ""
	}
	url, isString := value.(string)
	if !isString || !urlPattern.MatchString(url) {
		return false, "URL should be in standardized format (e.g., http://example.com)"
	}
	return true, ""
}

// CheckProductIDUniqueness fails when the record's product_id was already
// recorded in seen, otherwise records it. The mutation is deliberate: later
// records in the same batch observe it, so processing order matters.
func (v *Validator) CheckProductIDUniqueness(rec Record, seen *IDSet) (bool, string) {
	id := rec["product_id"]
	if seen.Has(id) {
		return false, fmt.Sprintf("Duplicate product_id: %v", id)
	}
	seen.Add(id)
	return true, ""
}

// CheckDuplicateImages fails on the first URL repeated within the record's
// own images list. The dedup set is local to the record.
func (v *Validator) CheckDuplicateImages(rec Record) (bool, string) {
	images, ok := rec["images"].([]interface{})
	if !ok {
		return true, ""
	}
	unique := make(map[interface{}]struct{}, len(images))
	for _, img := range images {
		if _, dup := unique[img]; dup {
			return false, fmt.Sprintf("Duplicate image URL: %v", img)
		}
		unique[img] = struct{}{}
	}
	return true, ""
}

package validation

import "fmt"

// Failure is one invalid record in a batch, identified by its 1-based
// position in the input.
type Failure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

func (f Failure) String() string {
	return fmt.Sprintf("Product data at index %d is not valid: %s", f.Index, f.Reason)
}

// BatchResult summarizes one batch run.
type BatchResult struct {
	Valid    bool      `json:"valid"`
	Total    int       `json:"total"`
	Failures []Failure `json:"failures,omitempty"`
}

// ValidateBatch runs ValidateRecord over records in input order with a
// single shared seen-ID set. Invalid records are collected and never abort
// the batch.
func (v *Validator) ValidateBatch(records []interface{}) BatchResult {
	result := BatchResult{Total: len(records)}
	seen := NewIDSet()

	for i, record := range records {
		if ok, reason := v.ValidateRecord(record, seen); !ok {
			result.Failures = append(result.Failures, Failure{Index: i + 1, Reason: reason})
		}
	}

	result.Valid = len(result.Failures) == 0
	return result
}

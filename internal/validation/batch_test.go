package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBatch(t *testing.T) {
	v := newTestValidator()

	t.Run("empty batch is valid", func(t *testing.T) {
		result := v.ValidateBatch(nil)
		assert.True(t, result.Valid)
		assert.Zero(t, result.Total)
		assert.Empty(t, result.Failures)
	})

	t.Run("all valid records", func(t *testing.T) {
		result := v.ValidateBatch([]interface{}{validRecord(1), validRecord(2), validRecord(3)})
		assert.True(t, result.Valid)
		assert.Equal(t, 3, result.Total)
		assert.Empty(t, result.Failures)
	})

	t.Run("duplicate id flags only the later record", func(t *testing.T) {
		// Records 1 and 2 share an ID; record 3 is clean. Only the second
		// occurrence is a failure, and it carries its 1-based index.
		result := v.ValidateBatch([]interface{}{validRecord(5), validRecord(5), validRecord(6)})
		assert.False(t, result.Valid)
		assert.Equal(t, 3, result.Total)
		require.Len(t, result.Failures, 1)
		assert.Equal(t, 2, result.Failures[0].Index)
		assert.Equal(t, "Duplicate product_id: 5", result.Failures[0].Reason)
	})

	t.Run("invalid records never abort the batch", func(t *testing.T) {
		broken := validRecord(8)
		broken["url"] = "not a url"
		result := v.ValidateBatch([]interface{}{validRecord(7), broken, validRecord(9)})
		assert.False(t, result.Valid)
		require.Len(t, result.Failures, 1)
		assert.Equal(t, 2, result.Failures[0].Index)
	})

	t.Run("failures keep record order", func(t *testing.T) {
		first := validRecord(10)
		first["image"] = nil
		second := validRecord(11)
		delete(second, "brand")
		result := v.ValidateBatch([]interface{}{first, second})
		require.Len(t, result.Failures, 2)
		assert.Equal(t, 1, result.Failures[0].Index)
		assert.Equal(t, "Image key cannot be null", result.Failures[0].Reason)
		assert.Equal(t, 2, result.Failures[1].Index)
		assert.Equal(t, "Invalid product data structure", result.Failures[1].Reason)
	})

	t.Run("seen ids reset per batch", func(t *testing.T) {
		records := []interface{}{validRecord(1)}
		assert.True(t, v.ValidateBatch(records).Valid)
		assert.True(t, v.ValidateBatch(records).Valid)
	})
}

func TestValidateBatchFromJSON(t *testing.T) {
	v := newTestValidator()

	// A feed as it comes off the wire: decoded with encoding/json, so
	// numbers are float64 and objects are map[string]interface{}.
	payload, err := json.Marshal([]interface{}{validRecord(1), validRecord(2)})
	require.NoError(t, err)

	var records []interface{}
	require.NoError(t, json.Unmarshal(payload, &records))

	result := v.ValidateBatch(records)
	assert.True(t, result.Valid, "failures: %v", result.Failures)
	assert.Equal(t, 2, result.Total)
}

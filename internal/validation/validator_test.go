package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecord(t *testing.T) {
	v := newTestValidator()

	t.Run("fully valid record", func(t *testing.T) {
		ok, msg := v.ValidateRecord(validRecord(1), NewIDSet())
		assert.True(t, ok)
		assert.Equal(t, "Product data is valid", msg)
	})

	t.Run("plain map input is accepted", func(t *testing.T) {
		ok, _ := v.ValidateRecord(map[string]interface{}(validRecord(1)), NewIDSet())
		assert.True(t, ok)
	})

	t.Run("non-mapping input fails structurally", func(t *testing.T) {
		ok, msg := v.ValidateRecord("garbage", NewIDSet())
		assert.False(t, ok)
		assert.Equal(t, "Invalid product data structure", msg)
	})

	t.Run("missing required key fails structurally", func(t *testing.T) {
		rec := validRecord(1)
		delete(rec, "category")
		ok, msg := v.ValidateRecord(rec, NewIDSet())
		assert.False(t, ok)
		assert.Equal(t, "Invalid product data structure", msg)
	})

	t.Run("schema failure reports every mismatch", func(t *testing.T) {
		rec := validRecord(1)
		rec["brand"] = 42.0
		rec["title"] = 43.0
		ok, msg := v.ValidateRecord(rec, NewIDSet())
		assert.False(t, ok)
		assert.Contains(t, msg, "Key 'brand' has incorrect type")
		assert.Contains(t, msg, "Key 'title' has incorrect type")
	})

	t.Run("first failing check wins", func(t *testing.T) {
		// Broken schema and broken images: only the schema reason surfaces.
		rec := validRecord(1)
		rec["brand"] = 42.0
		rec["image"] = nil
		ok, msg := v.ValidateRecord(rec, NewIDSet())
		assert.False(t, ok)
		assert.Contains(t, msg, "Key 'brand' has incorrect type")
		assert.NotContains(t, msg, "Image key")
	})

	t.Run("image failure surfaces after schema passes", func(t *testing.T) {
		rec := validRecord(1)
		rec["images"] = []interface{}{}
		ok, msg := v.ValidateRecord(rec, NewIDSet())
		assert.False(t, ok)
		assert.Equal(t, "Images list should contain at least one URL", msg)
	})

	t.Run("url failure surfaces after images pass", func(t *testing.T) {
		rec := validRecord(1)
		rec["url"] = "ftp://example.com"
		ok, msg := v.ValidateRecord(rec, NewIDSet())
		assert.False(t, ok)
		assert.Equal(t, "URL should be in standardized format (e.g., http://example.com)", msg)
	})

	t.Run("duplicate id detected via shared set", func(t *testing.T) {
		seen := NewIDSet()
		ok, _ := v.ValidateRecord(validRecord(7), seen)
		require.True(t, ok)
		ok, msg := v.ValidateRecord(validRecord(7), seen)
		assert.False(t, ok)
		assert.Equal(t, "Duplicate product_id: 7", msg)
	})

	t.Run("duplicate image urls detected last", func(t *testing.T) {
		rec := validRecord(1)
		rec["images"] = []interface{}{"http://a.jpg", "http://a.jpg"}
		ok, msg := v.ValidateRecord(rec, NewIDSet())
		assert.False(t, ok)
		assert.Equal(t, "Duplicate image URL: http://a.jpg", msg)
	})

	t.Run("price fields are not part of the sequence", func(t *testing.T) {
		// selling_price above original_price would fail CheckPriceConsistency,
		// but ValidateRecord does not run it.
		rec := validRecord(1)
		rec["selling_price"] = 20.0
		rec["original_price"] = 10.0
		assert.False(t, v.CheckPriceConsistency(rec))

		ok, msg := v.ValidateRecord(rec, NewIDSet())
		assert.True(t, ok)
		assert.Equal(t, "Product data is valid", msg)
	})
}

package validation

import (
	"encoding/json"
	"math"
)

// Record is one scraped product as decoded from JSON.
type Record map[string]interface{}

// requiredKeys must all be present for a record to be structurally valid.
var requiredKeys = []string{"brand", "title", "product_id", "url", "retail_price", "image", "category"}

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindList
	kindDict
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindInt:
		return "int"
	case kindList:
		return "list"
	case kindDict:
		return "dict"
	}
	return "unknown"
}

type schemaField struct {
	name     string
	kind     fieldKind
	nullable bool
}

// expectedSchema lists every field a scraped product carries. Violations are
// reported in this order, so the order is part of the contract.
var expectedSchema = []schemaField{
	{name: "brand", kind: kindString},
	{name: "title", kind: kindString},
	{name: "description", kind: kindString},
	{name: "image", kind: kindString},
	{name: "images", kind: kindList},
	{name: "retail_price", kind: kindString},
	{name: "final_price", kind: kindString},
	{name: "url", kind: kindString},
	{name: "product_id", kind: kindInt},
	{name: "category", kind: kindString},
	{name: "sales_size", kind: kindString},
	{name: "availability", kind: kindString},
	{name: "Buzzwords", kind: kindList},
	{name: "nutrition", kind: kindDict, nullable: true},
	{name: "ingredients", kind: kindList, nullable: true},
	{name: "country_of_origin", kind: kindString, nullable: true},
}

// matches reports whether value satisfies the field's type. Nullable fields
// accept an explicit null, never a merely empty value.
func (f schemaField) matches(value interface{}) bool {
	if value == nil {
		return f.nullable
	}
	switch f.kind {
	case kindString:
		_, ok := value.(string)
		return ok
	case kindInt:
		return isInt(value)
	case kindList:
		_, ok := value.([]interface{})
		return ok
	case kindDict:
		_, ok := value.(map[string]interface{})
		return ok
	}
	return false
}

func (f schemaField) expected() string {
	if f.nullable {
		return f.kind.String() + " or null"
	}
	return f.kind.String()
}

// isInt reports whether value holds an integral number. encoding/json decodes
// every JSON number to float64, so whole-valued floats count.
func isInt(value interface{}) bool {
	switch n := value.(type) {
	case int, int32, int64:
		return true
	case float64:
		return n == math.Trunc(n)
	case json.Number:
		_, err := n.Int64()
		return err == nil
	}
	return false
}

func typeName(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		if v == math.Trunc(v) {
			return "int"
		}
		return "float"
	case int, int32, int64, json.Number:
		return "int"
	case []interface{}:
		return "list"
	case map[string]interface{}:
		return "dict"
	}
	return "unknown"
}

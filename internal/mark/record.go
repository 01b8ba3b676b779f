package mark

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is a raw attribute as delivered by a data source, before
// normalization. Build it with PairRecord or FieldRecord.
type Record struct {
	Title string
	Value any
}

// nameFields is the lookup order for the display name of an object record.
var nameFields = []string{"title", "name", "key", "id"}

// PairRecord adapts the [title, value] shape.
func PairRecord(title string, value any) Record {
	return Record{Title: title, Value: value}
}

// FieldRecord adapts the object shape. The name comes from the first non-empty
// of title, name, key and id; the value from the "value" field.
func FieldRecord(fields map[string]any) Record {
	var r Record
	for _, f := range nameFields {
		if s := scalarString(fields[f]); s != "" {
			r.Title = s
			break
		}
	}
	r.Value = fields["value"]
	return r
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

// numericValue converts a raw value. Zero, negative, non-finite and
// non-numeric values are reported as missing.
func numericValue(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}

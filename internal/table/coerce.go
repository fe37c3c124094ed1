package table

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Coerce converts a field value to the string used for searching, filtering,
// sorting and export. Nil yields the empty string. Slices and arrays join
// their coerced elements with commas, nested ones flattened the same way.
func Coerce(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return ""
		}
		return Coerce(*val)
	case []string:
		return strings.Join(val, ",")
	case fmt.Stringer:
		return val.String()
	default:
		if rv := reflect.ValueOf(val); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			return joinElements(rv)
		}
		return fmt.Sprint(val)
	}
}

func joinElements(rv reflect.Value) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = Coerce(rv.Index(i).Interface())
	}
	return strings.Join(parts, ",")
}

// lookup returns the value stored at key and whether it is present and
// non-nil.
func lookup(r Record, key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// isFalsy reports whether v exports as an empty CSV field: nil, the empty
// string, false, and numeric zero or NaN.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []byte:
		return len(val) == 0
	case bool:
		return !val
	case int:
		return val == 0
	case int8:
		return val == 0
	case int16:
		return val == 0
	case int32:
		return val == 0
	case int64:
		return val == 0
	case uint:
		return val == 0
	case uint8:
		return val == 0
	case uint16:
		return val == 0
	case uint32:
		return val == 0
	case uint64:
		return val == 0
	case float32:
		return val == 0 || math.IsNaN(float64(val))
	case float64:
		return val == 0 || math.IsNaN(val)
	case time.Time:
		return val.IsZero()
	case *time.Time:
		return val == nil || val.IsZero()
	}
	return false
}

// Placeholder is shown for cells without a renderer whose value is falsy.
const Placeholder = "-"

// Cell is the display text of col for r: the column's renderer when it has
// one, otherwise the coerced value, or Placeholder for falsy values.
func Cell(r Record, col Column) string {
	if col.HasRenderer() {
		return col.Render(r)
	}
	v := r[col.Key]
	if isFalsy(v) {
		return Placeholder
	}
	return Coerce(v)
}

package backend

import (
	"encoding/json"
	"math"
	"strconv"

	"getjoy-backend/models"
)

// matchesFilter applies exact-match query filters to a document. Every
// given key must be present and equal; values compare through their string
// form, with numeric strings matching stored numbers so ?userId=5 finds a
// document whose userId is the JSON number 5.
func matchesFilter(doc map[string]any, filter map[string]string) bool {
	for key, want := range filter {
		v, ok := doc[key]
		if !ok {
			return false
		}
		got := valueString(v)
		if got != want && !models.SameID(got, want) {
			return false
		}
	}
	return true
}

func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

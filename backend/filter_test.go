package backend

import "testing"

func TestMatchesFilterExactMatch(t *testing.T) {
	doc := map[string]any{"userId": float64(7), "status": "confirmed", "freePickup": true}

	cases := []struct {
		name   string
		filter map[string]string
		want   bool
	}{
		{"number as string", map[string]string{"userId": "7"}, true},
		{"string field", map[string]string{"status": "confirmed"}, true},
		{"bool field", map[string]string{"freePickup": "true"}, true},
		{"all keys must match", map[string]string{"userId": "7", "status": "cancelled"}, false},
		{"missing key never matches", map[string]string{"hotelId": "101"}, false},
		{"wrong value", map[string]string{"userId": "8"}, false},
		{"empty filter matches everything", map[string]string{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchesFilter(doc, tc.filter); got != tc.want {
				t.Errorf("matchesFilter(%v) = %v, want %v", tc.filter, got, tc.want)
			}
		})
	}
}

func TestMatchesFilterNormalizesNumericIDs(t *testing.T) {
	// an id seeded as a number, queried as a padded string
	doc := map[string]any{"hotelId": "0101"}
	if !matchesFilter(doc, map[string]string{"hotelId": "101"}) {
		t.Error("numeric strings should compare by value")
	}

	doc = map[string]any{"destinationId": float64(3)}
	if !matchesFilter(doc, map[string]string{"destinationId": "3"}) {
		t.Error("stored numbers should match their string form")
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{true, "true"},
		{float64(5), "5"},
		{float64(5.5), "5.5"},
		{[]any{1, 2}, "[1,2]"},
	}
	for _, tc := range cases {
		if got := valueString(tc.in); got != tc.want {
			t.Errorf("valueString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

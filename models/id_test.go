package models

import (
	"encoding/json"
	"testing"
)

func TestNumericIDUnmarshalTolerance(t *testing.T) {
	cases := []struct {
		in   string
		want NumericID
	}{
		{`7`, 7},
		{`"7"`, 7},
		{`"3.0"`, 3},
		{`null`, 0},
		{`""`, 0},
	}
	for _, tc := range cases {
		var n NumericID
		if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
			t.Errorf("unmarshal %s: %v", tc.in, err)
			continue
		}
		if n != tc.want {
			t.Errorf("unmarshal %s = %d, want %d", tc.in, n, tc.want)
		}
	}

	var n NumericID
	if err := json.Unmarshal([]byte(`"abc"`), &n); err == nil {
		t.Error("non-numeric strings must fail")
	}
}

func TestNumericIDMarshalsAsNumber(t *testing.T) {
	data, err := json.Marshal(NumericID(42))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "42" {
		t.Errorf("marshal = %s, want the bare number 42", data)
	}
}

func TestSameID(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"7", "7", true},
		{"7", "07", true},
		{" 7", "7", true},
		{"7", "8", false},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"", "", false},
		{"7", "", false},
	}
	for _, tc := range cases {
		if got := SameID(tc.a, tc.b); got != tc.want {
			t.Errorf("SameID(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

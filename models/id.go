package models

import (
	"fmt"
	"strconv"
	"strings"
)

// NumericID is an integer id that tolerates being encoded as either a JSON
// number or a numeric string. The collection store is schemaless, so ids
// seeded as numbers can come back as strings after an edit flow; lookups
// must compare by numeric value, not byte-equality.
type NumericID int64

func (n NumericID) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n NumericID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(n), 10)), nil
}

func (n *NumericID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// some edited records carry float-formatted ids ("3.0")
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid numeric id %q", s)
		}
		v = int64(f)
	}
	*n = NumericID(v)
	return nil
}

// ParseNumericID parses a route or query parameter into a NumericID.
func ParseNumericID(s string) (NumericID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric id %q", s)
	}
	return NumericID(v), nil
}

// SameID reports whether two wire ids refer to the same record. Ids are
// compared numerically when both sides parse as numbers ("7" == "07"),
// otherwise byte-equal.
func SameID(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == b {
		return a != ""
	}
	av, aerr := strconv.ParseInt(a, 10, 64)
	bv, berr := strconv.ParseInt(b, 10, 64)
	return aerr == nil && berr == nil && av == bv
}

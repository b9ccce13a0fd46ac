package metrics

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Key identifies one benchmark measurement.
type Key struct {
	Module string
	File   string
	Binary string
	Metric string
}

// Record is one row of the metrics CSV.
type Record struct {
	Module string
	File   string
	Binary string
	Metric string
	Value  Value
	Unit   string
}

// Key returns the lookup key of the record.
func (r Record) Key() Key {
	return Key{Module: r.Module, File: r.File, Binary: r.Binary, Metric: r.Metric}
}

// Value holds a metric value. It is numeric whenever the source text parses
// as a number, otherwise the raw text is kept.
type Value struct {
	num     float64
	text    string
	numeric bool
}

// ParseValue coerces raw to a number when possible. It never fails.
func ParseValue(raw string) Value {
	f, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil {
		return Value{text: raw}
	}
	return Value{num: f, text: raw, numeric: true}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{num: f, text: strconv.FormatFloat(f, 'g', -1, 64), numeric: true}
}

// Text returns a non-numeric value.
func Text(s string) Value {
	return Value{text: s}
}

// IsNumeric reports whether the value was coerced to a number.
func (v Value) IsNumeric() bool { return v.numeric }

// Float returns the numeric value and whether there is one.
func (v Value) Float() (float64, bool) {
	return v.num, v.numeric
}

// Finite returns the numeric value when it is neither NaN nor an infinity.
// Charts can only place finite values.
func (v Value) Finite() (float64, bool) {
	if !v.numeric || math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return 0, false
	}
	return v.num, true
}

// String returns the text the value was parsed from.
func (v Value) String() string { return v.text }

// Truthy interprets boolean-like values such as the literal pooling flag,
// which the harness may write as 0/1, true/false or yes/no.
func (v Value) Truthy() bool {
	if v.numeric {
		if math.IsNaN(v.num) {
			return false
		}
		return math.Trunc(v.num) != 0
	}
	switch strings.ToLower(strings.TrimSpace(v.text)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

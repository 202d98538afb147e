// Package core provides the transaction data model plus the amount and
// date coercion rules shared by every query surface.
//
// Coercion is deliberately best-effort: a non-numeric amount becomes NaN
// and an unparsable date never matches, but no record is ever rejected.
package core

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount carries the raw textual form of a monetary value. Datasets mix
// JSON numbers and JSON strings for the amount field, so unmarshalling
// keeps the text as-is and numeric coercion happens at query time.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n.String())
		return nil
	}
	// null and any other shape degrade to empty, coerced to NaN later
	*a = ""
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// Float coerces the amount to a float64. Failure yields NaN rather than an
// error; the poison value flows through sums and averages untouched.
func (a Amount) Float() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(a)), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

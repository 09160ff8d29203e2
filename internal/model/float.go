package model

import (
	"math"
	"strconv"
	"strings"
)

// Float is a float64 that survives JSON encoding when the value is not
// finite. Zero-denominator divisions are deliberately unguarded in the
// analytics pipeline, so +Inf and NaN are legitimate values here; they
// encode as the strings "+Inf", "-Inf" and "NaN" and are rendered as-is.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"+Inf"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Inf"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	switch raw {
	case "+Inf":
		*f = Float(math.Inf(1))
		return nil
	case "-Inf":
		*f = Float(math.Inf(-1))
		return nil
	case "NaN":
		*f = Float(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

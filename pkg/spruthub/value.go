package spruthub

import (
	"fmt"
	"math"
	"strconv"
)

// TaggedValue is the hub's wire representation of a characteristic value.
// Exactly one field is set; it marshals to {boolValue}, {intValue},
// {floatValue} or {stringValue}.
type TaggedValue struct {
	Bool   *bool    `json:"boolValue,omitempty"`
	Int    *int64   `json:"intValue,omitempty"`
	Float  *float64 `json:"floatValue,omitempty"`
	String *string  `json:"stringValue,omitempty"`
}

// EncodeValue converts an agent-supplied value into the hub's tagged-union
// form. The function is total: unparseable strings degrade to stringValue,
// unknown types to their string form. JSON-decoded numbers arrive as float64;
// integral floats encode as intValue.
func EncodeValue(v any) TaggedValue {
	switch t := v.(type) {
	case bool:
		return TaggedValue{Bool: &t}
	case int:
		n := int64(t)
		return TaggedValue{Int: &n}
	case int64:
		return TaggedValue{Int: &t}
	case float64:
		return encodeNumber(t)
	case float32:
		return encodeNumber(float64(t))
	case string:
		return encodeString(t)
	default:
		s := fmt.Sprint(v)
		return TaggedValue{String: &s}
	}
}

func encodeNumber(f float64) TaggedValue {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < math.MaxInt64 {
		n := int64(f)
		return TaggedValue{Int: &n}
	}
	return TaggedValue{Float: &f}
}

// encodeString interprets boolean and numeric literals before falling back
// to an opaque string.
func encodeString(s string) TaggedValue {
	switch s {
	case "true":
		b := true
		return TaggedValue{Bool: &b}
	case "false":
		b := false
		return TaggedValue{Bool: &b}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return encodeNumber(f)
	}
	return TaggedValue{String: &s}
}

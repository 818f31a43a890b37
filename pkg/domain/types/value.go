package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidValue is returned when a raw value is neither a string nor a number
var ErrInvalidValue = goerr.New("value must be a string or a number")

// ValueKind tells which side of a Value is populated
type ValueKind int

const (
	ValueKindNone ValueKind = iota
	ValueKindString
	ValueKindNumber
)

// String returns the string representation of the kind
func (k ValueKind) String() string {
	switch k {
	case ValueKindString:
		return "string"
	case ValueKindNumber:
		return "number"
	default:
		return "none"
	}
}

// Value holds either a string or a number. Consumers branch on Kind().
type Value struct {
	kind ValueKind
	str  string
	num  float64
}

// StringValue creates a string Value
func StringValue(s string) Value {
	return Value{kind: ValueKindString, str: s}
}

// NumberValue creates a number Value
func NumberValue(n float64) Value {
	return Value{kind: ValueKindNumber, num: n}
}

// NewValue converts a decoded document value. TOML yields int64, YAML int and
// JSON float64, so every integer and float width is accepted as a number.
func NewValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return StringValue(v), nil
	case int:
		return NumberValue(float64(v)), nil
	case int32:
		return NumberValue(float64(v)), nil
	case int64:
		return NumberValue(float64(v)), nil
	case uint:
		return NumberValue(float64(v)), nil
	case uint32:
		return NumberValue(float64(v)), nil
	case uint64:
		return NumberValue(float64(v)), nil
	case float32:
		return NumberValue(float64(v)), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Value{}, goerr.Wrap(ErrInvalidValue, "number must be finite", goerr.V("value", v))
		}
		return NumberValue(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Value{}, goerr.Wrap(ErrInvalidValue, "malformed number", goerr.V("value", string(v)))
		}
		return NumberValue(f), nil
	default:
		return Value{}, goerr.Wrap(ErrInvalidValue, "unsupported value type",
			goerr.V("type", fmt.Sprintf("%T", raw)))
	}
}

// Kind returns which representation the value holds
func (v Value) Kind() ValueKind {
	return v.kind
}

// AsString returns the string side and true if the value is a string
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == ValueKindString
}

// AsNumber returns the number side and true if the value is a number
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == ValueKindNumber
}

// String renders the value for display. Whole numbers print without a fraction.
func (v Value) String() string {
	switch v.kind {
	case ValueKindString:
		return v.str
	case ValueKindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON keeps the original representation: strings stay quoted, numbers do not
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueKindString:
		return json.Marshal(v.str)
	case ValueKindNumber:
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON string, number or null
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return goerr.Wrap(err, "failed to decode value")
	}

	parsed, err := NewValue(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

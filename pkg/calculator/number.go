package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind reports whether a Number holds an integer or a floating-point value
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

// String returns "int" or "float"
func (k Kind) String() string {
	if k == KindFloat {
		return "float"
	}
	return "int"
}

// Number is an arithmetic operand: either an int64 or a float64.
// The zero value is the integer 0.
type Number struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integer Number
func Int(v int64) Number {
	return Number{kind: KindInt, i: v}
}

// Float returns a floating-point Number
func Float(v float64) Number {
	return Number{kind: KindFloat, f: v}
}

// decimalPattern matches plain decimal literals with an optional exponent.
// strconv also accepts NaN, Inf, hex floats and underscores; none of those
// are operands.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber parses s as an integer when it has integer syntax and as a
// float otherwise, so "5" is an int and "5.0" is a float. Only finite
// decimal values are accepted.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, fmt.Errorf("empty operand: %w", ErrInvalidArgument)
	}

	if !decimalPattern.MatchString(s) {
		return Number{}, fmt.Errorf("invalid operand %q: %w", s, ErrInvalidArgument)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Number{}, fmt.Errorf("invalid operand %q: %w", s, ErrInvalidArgument)
	}
	return Float(f), nil
}

// FromFloat64 converts a decoded JSON number. JSON does not keep the
// int/float distinction, so integral values inside the int64 range become ints.
func FromFloat64(v float64) Number {
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 && !math.IsInf(v, 0) {
		return Int(int64(v))
	}
	return Float(v)
}

// Kind returns the operand kind
func (n Number) Kind() Kind {
	return n.kind
}

// IsInt reports whether n holds an integer
func (n Number) IsInt() bool {
	return n.kind == KindInt
}

// Int64 returns n as an int64, truncating floats toward zero
func (n Number) Int64() int64 {
	if n.kind == KindFloat {
		return int64(n.f)
	}
	return n.i
}

// Float64 returns n as a float64
func (n Number) Float64() float64 {
	if n.kind == KindFloat {
		return n.f
	}
	return float64(n.i)
}

// IsZero reports whether n is integer zero or floating-point zero (either sign)
func (n Number) IsZero() bool {
	if n.kind == KindFloat {
		return n.f == 0
	}
	return n.i == 0
}

// String formats integers in decimal and floats in their shortest
// round-trip form, so Float(5) prints as "5" and Float(8.7) as "8.7".
func (n Number) String() string {
	if n.kind == KindFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

// MarshalJSON encodes n as a JSON number. NaN and infinities cannot be
// represented in JSON and are encoded as strings.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.kind == KindFloat && (math.IsNaN(n.f) || math.IsInf(n.f, 0)) {
		return json.Marshal(n.String())
	}
	return []byte(n.String()), nil
}

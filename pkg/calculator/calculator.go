// Package calculator provides the four elementary arithmetic operations
// over integer and floating-point operands.
//
// Add, Subtract and Multiply return an integer only when both operands are
// integers. Divide always returns a float64 and rejects a zero divisor.
package calculator

import (
	"fmt"
	"strings"
)

// Calculator is stateless; the zero value is ready to use and safe for
// concurrent use.
type Calculator struct{}

// New returns a Calculator
func New() *Calculator {
	return &Calculator{}
}

// Add returns a + b. Integer results wrap around on int64 overflow, as Go
// integer arithmetic does.
func (c *Calculator) Add(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		return Int(a.i + b.i)
	}
	return Float(a.Float64() + b.Float64())
}

// Subtract returns a - b. Integer results wrap around on int64 overflow.
func (c *Calculator) Subtract(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		return Int(a.i - b.i)
	}
	return Float(a.Float64() - b.Float64())
}

// Multiply returns a * b. Integer results wrap around on int64 overflow.
func (c *Calculator) Multiply(a, b Number) Number {
	if a.IsInt() && b.IsInt() {
		return Int(a.i * b.i)
	}
	return Float(a.Float64() * b.Float64())
}

// Divide returns a / b as a float64.
// It returns ErrDivisionByZero if b is integer or floating-point zero.
func (c *Calculator) Divide(a, b Number) (float64, error) {
	if b.IsZero() {
		return 0, ErrDivisionByZero
	}
	return a.Float64() / b.Float64(), nil
}

// Operation names one of the four binary operations
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations lists the supported operations in display order
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

var operationAliases = map[string]Operation{
	"add":      OpAdd,
	"+":        OpAdd,
	"subtract": OpSubtract,
	"-":        OpSubtract,
	"multiply": OpMultiply,
	"*":        OpMultiply,
	"x":        OpMultiply,
	"×":        OpMultiply,
	"divide":   OpDivide,
	"/":        OpDivide,
	"÷":        OpDivide,
}

// ParseOperation accepts an operation name or its symbol
func ParseOperation(s string) (Operation, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownOperation)
	}
	return op, nil
}

// Symbol returns the operator as shown to people
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return string(op)
	}
}

// Apply runs op on a and b. Quotients are returned as float Numbers.
func (c *Calculator) Apply(op Operation, a, b Number) (Number, error) {
	switch op {
	case OpAdd:
		return c.Add(a, b), nil
	case OpSubtract:
		return c.Subtract(a, b), nil
	case OpMultiply:
		return c.Multiply(a, b), nil
	case OpDivide:
		q, err := c.Divide(a, b)
		if err != nil {
			return Number{}, err
		}
		return Float(q), nil
	default:
		return Number{}, fmt.Errorf("%q: %w", string(op), ErrUnknownOperation)
	}
}

package types

import (
	"time"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
)

// CalcContext provides shared context across all calculator responses
type CalcContext struct {
	Timestamp    time.Time `json:"timestamp"`           // Operation timestamp
	Operation    string    `json:"operation,omitempty"` // Operation performed
	ErrorMessage string    `json:"error,omitempty"`     // Error message if any
	Summary      string    `json:"summary,omitempty"`   // Human-readable summary
}

// OperationResponse is returned for add, subtract, multiply and divide
type OperationResponse struct {
	Status     string            `json:"status"`
	Context    CalcContext       `json:"context"`
	Expression string            `json:"expression"` // e.g. "5 + 3"
	A          calculator.Number `json:"a"`
	B          calculator.Number `json:"b"`
	Result     calculator.Number `json:"result"`
	ResultType string            `json:"resultType"` // "int" or "float"
}

// GreetResponse is returned for greet
type GreetResponse struct {
	Status   string      `json:"status"`
	Context  CalcContext `json:"context"`
	Name     string      `json:"name"`
	Greeting string      `json:"greeting"`
}

// NewOperationResponse builds a successful response for op applied to a and b
func NewOperationResponse(op calculator.Operation, a, b, result calculator.Number) OperationResponse {
	expr := a.String() + " " + op.Symbol() + " " + b.String()
	return OperationResponse{
		Status: "success",
		Context: CalcContext{
			Timestamp: time.Now(),
			Operation: string(op),
			Summary:   expr + " = " + result.String(),
		},
		Expression: expr,
		A:          a,
		B:          b,
		Result:     result,
		ResultType: result.Kind().String(),
	}
}

// NewGreetResponse builds a successful greet response
func NewGreetResponse(name, greeting string) GreetResponse {
	return GreetResponse{
		Status: "success",
		Context: CalcContext{
			Timestamp: time.Now(),
			Operation: "greet",
			Summary:   greeting,
		},
		Name:     name,
		Greeting: greeting,
	}
}

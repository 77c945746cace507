package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
)

type operationResult struct {
	Status     string      `json:"status"`
	Expression string      `json:"expression"`
	Result     json.Number `json:"result"`
	ResultType string      `json:"resultType"`
	Context    struct {
		Operation string `json:"operation"`
		Summary   string `json:"summary"`
	} `json:"context"`
}

func getTextContent(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	if tc, ok := mcp.AsTextContent(result.Content[0]); ok {
		return tc.Text
	}

	return ""
}

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func mustOperation(t *testing.T, name string) calculator.Operation {
	t.Helper()
	op, err := calculator.ParseOperation(name)
	if err != nil {
		t.Fatalf("ParseOperation(%q): %v", name, err)
	}
	return op
}

func decodeOperation(t *testing.T, result *mcp.CallToolResult) operationResult {
	t.Helper()
	if result.IsError {
		t.Fatalf("unexpected error result: %s", getTextContent(result))
	}

	var resp operationResult
	if err := json.Unmarshal([]byte(getTextContent(result)), &resp); err != nil {
		t.Fatalf("Failed to parse operation response: %v", err)
	}
	return resp
}

func TestPingCommand(t *testing.T) {
	server := NewMCPCalculatorServer("", "test-version")

	result, err := server.Ping(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	text := getTextContent(result)
	if text != "pong - Calculator MCP is connected!" {
		t.Errorf("Unexpected ping response: %s", text)
	}
}

func TestOperationTools(t *testing.T) {
	server := NewMCPCalculatorServer("", "test-version")
	ctx := context.Background()

	cases := []struct {
		name       string
		op         string
		a, b       interface{}
		want       string
		wantType   string
		expression string
	}{
		{"add ints", "add", "5", "3", "8", "int", "5 + 3"},
		{"add floats", "add", "5.5", "3.2", "8.7", "float", "5.5 + 3.2"},
		{"subtract", "subtract", "10", "4", "6", "int", "10 - 4"},
		{"multiply", "multiply", "7", "6", "42", "int", "7 × 6"},
		{"divide", "divide", "20", "4", "5", "float", "20 ÷ 4"},
		{"json numbers", "add", 2.0, 0.5, "2.5", "float", "2 + 0.5"},
		{"integral json numbers", "multiply", 6.0, 7.0, "42", "int", "6 × 7"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := server.apply(mustOperation(t, tc.op), map[string]interface{}{"a": tc.a, "b": tc.b})
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}

			resp := decodeOperation(t, result)
			if resp.Status != "success" {
				t.Errorf("Status = %q; want success", resp.Status)
			}
			if resp.Result.String() != tc.want {
				t.Errorf("Result = %s; want %s", resp.Result, tc.want)
			}
			if resp.ResultType != tc.wantType {
				t.Errorf("ResultType = %s; want %s", resp.ResultType, tc.wantType)
			}
			if resp.Expression != tc.expression {
				t.Errorf("Expression = %q; want %q", resp.Expression, tc.expression)
			}
			if resp.Context.Operation != tc.op {
				t.Errorf("Context.Operation = %q; want %q", resp.Context.Operation, tc.op)
			}
		})
	}

	// The registered handler for divide goes through the same path
	result, err := server.operationHandler("divide")(ctx, newRequest(map[string]interface{}{"a": "10", "b": "2"}))
	if err != nil {
		t.Fatalf("divide handler failed: %v", err)
	}
	if resp := decodeOperation(t, result); resp.Result.String() != "5" || resp.ResultType != "float" {
		t.Errorf("divide 10 2 = %s (%s); want 5 (float)", resp.Result, resp.ResultType)
	}
}

func TestDivideByZeroTool(t *testing.T) {
	server := NewMCPCalculatorServer("", "test-version")

	for _, b := range []interface{}{"0", "0.0", 0.0} {
		result, err := server.operationHandler("divide")(context.Background(),
			newRequest(map[string]interface{}{"a": "10", "b": b}))
		if err != nil {
			t.Fatalf("handler returned a Go error: %v", err)
		}
		if !result.IsError {
			t.Errorf("divide by %v: expected an error result", b)
		}
		if text := getTextContent(result); text != "Error: Division by zero is not allowed" {
			t.Errorf("divide by %v: unexpected text %q", b, text)
		}
	}
}

func TestInvalidArguments(t *testing.T) {
	server := NewMCPCalculatorServer("", "test-version")
	ctx := context.Background()

	cases := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing a", map[string]interface{}{"b": "1"}, `missing required argument "a"`},
		{"not a number", map[string]interface{}{"a": "five", "b": "1"}, "invalid operand"},
		{"wrong type", map[string]interface{}{"a": true, "b": "1"}, "must be a number"},
	}

	for _, tc := range cases {
		result, err := server.operationHandler("add")(ctx, newRequest(tc.args))
		if err != nil {
			t.Fatalf("%s: handler returned a Go error: %v", tc.name, err)
		}
		if !result.IsError {
			t.Errorf("%s: expected an error result", tc.name)
		}
		if text := getTextContent(result); !strings.Contains(text, tc.want) {
			t.Errorf("%s: text %q does not contain %q", tc.name, text, tc.want)
		}
	}
}

func TestCalculateCommand(t *testing.T) {
	server := NewMCPCalculatorServer("", "test-version")
	ctx := context.Background()

	result, err := server.Calculate(ctx, newRequest(map[string]interface{}{
		"operation": "*",
		"a":         "15",
		"b":         "2",
	}))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if resp := decodeOperation(t, result); resp.Result.String() != "30" {
		t.Errorf("15 * 2 = %s; want 30", resp.Result)
	}

	result, err = server.Calculate(ctx, newRequest(map[string]interface{}{
		"operation": "modulo",
		"a":         "1",
		"b":         "2",
	}))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if !result.IsError || !strings.Contains(getTextContent(result), "unknown operation") {
		t.Errorf("unexpected result for unknown operation: %s", getTextContent(result))
	}
}

func TestGreetCommand(t *testing.T) {
	server := NewMCPCalculatorServer("Custom MCP", "test-version")

	result, err := server.Greet(context.Background(), newRequest(map[string]interface{}{"name": "World"}))
	if err != nil {
		t.Fatalf("Greet failed: %v", err)
	}

	var resp struct {
		Status   string `json:"status"`
		Greeting string `json:"greeting"`
	}
	if err := json.Unmarshal([]byte(getTextContent(result)), &resp); err != nil {
		t.Fatalf("Failed to parse greet response: %v", err)
	}
	if resp.Greeting != "Hello, World!" {
		t.Errorf("Greeting = %q; want Hello, World!", resp.Greeting)
	}

	result, err = server.Greet(context.Background(), newRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Greet failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected an error result when name is missing")
	}
}

func TestOperandArg(t *testing.T) {
	args := map[string]interface{}{
		"int":    json.Number("7"),
		"float":  json.Number("2.5"),
		"number": float64(3),
	}
	for key, want := range map[string]string{"int": "7", "float": "2.5", "number": "3"} {
		n, err := operandArg(args, key)
		if err != nil {
			t.Errorf("operandArg(%q) returned error: %v", key, err)
			continue
		}
		if n.String() != want {
			t.Errorf("operandArg(%q) = %v; want %s", key, n, want)
		}
	}

	for _, v := range []interface{}{json.Number("abc"), json.Number("1e400"), "NaN", "Inf"} {
		_, err := operandArg(map[string]interface{}{"a": v}, "a")
		if !errors.Is(err, calculator.ErrInvalidArgument) {
			t.Errorf("operandArg(%v) error = %v; want ErrInvalidArgument", v, err)
			continue
		}
		if !strings.HasPrefix(err.Error(), `argument "a": `) {
			t.Errorf("operandArg(%v) error = %q; want it prefixed with the argument name", v, err.Error())
		}
	}
}

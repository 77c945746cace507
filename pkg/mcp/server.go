package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/greeter"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

// DefaultName is the server name announced to MCP clients
const DefaultName = "Calculator MCP"

const operandDescription = `Numeric operand. Integers ("5") keep integer results, decimals ("5.5") give float results`

// MCPCalculatorServer encapsulates the MCP server with calculator tools
type MCPCalculatorServer struct {
	server  *server.MCPServer
	calc    *calculator.Calculator
	name    string
	version string
}

// NewMCPCalculatorServer creates a new MCP server with all calculator tools registered
func NewMCPCalculatorServer(name, version string) *MCPCalculatorServer {
	if name == "" {
		name = DefaultName
	}

	s := &MCPCalculatorServer{
		server:  server.NewMCPServer(name, version),
		calc:    calculator.New(),
		name:    name,
		version: version,
	}

	// Register all tools
	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *MCPCalculatorServer) Server() *server.MCPServer {
	return s.server
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects
func (s *MCPCalculatorServer) ServeStdio() error {
	logger.Info("Starting MCP server", "name", s.name, "version", s.version)
	return server.ServeStdio(s.server)
}

// registerTools registers all calculator tools
func (s *MCPCalculatorServer) registerTools() {
	s.addPingTool()

	for _, op := range calculator.Operations {
		s.addOperationTool(op)
	}
	s.addCalculateTool()
	s.addGreetTool()
}

// addPingTool adds a simple ping tool for health checks
func (s *MCPCalculatorServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

var operationDescriptions = map[calculator.Operation]string{
	calculator.OpAdd:      "Add two numbers (a + b)",
	calculator.OpSubtract: "Subtract b from a (a - b)",
	calculator.OpMultiply: "Multiply two numbers (a × b)",
	calculator.OpDivide:   "Divide a by b (a ÷ b). Always returns a float; fails when b is zero",
}

// addOperationTool adds one tool per arithmetic operation
func (s *MCPCalculatorServer) addOperationTool(op calculator.Operation) {
	tool := mcp.NewTool(string(op),
		mcp.WithDescription(operationDescriptions[op]),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description(operandDescription),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description(operandDescription),
		),
	)

	s.server.AddTool(tool, s.operationHandler(op))
}

// addCalculateTool adds the calculate tool which takes the operation as an argument
func (s *MCPCalculatorServer) addCalculateTool() {
	calculateTool := mcp.NewTool("calculate",
		mcp.WithDescription("Apply an operation (add, subtract, multiply, divide or + - * /) to a and b"),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("Operation name or symbol"),
		),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description(operandDescription),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description(operandDescription),
		),
	)

	s.server.AddTool(calculateTool, s.Calculate)
}

// addGreetTool adds the greet tool
func (s *MCPCalculatorServer) addGreetTool() {
	greetTool := mcp.NewTool("greet",
		mcp.WithDescription("Return a greeting for the given name"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name to greet"),
		),
	)

	s.server.AddTool(greetTool, s.Greet)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *MCPCalculatorServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong - " + s.name + " is connected!"), nil
}

// operationHandler returns the handler for a single-operation tool
func (s *MCPCalculatorServer) operationHandler(op calculator.Operation) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Debug("Received operation request", "operation", op)
		return s.apply(op, request.Params.Arguments)
	}
}

// Calculate handles the calculate command
func (s *MCPCalculatorServer) Calculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received calculate request")

	name, ok := request.Params.Arguments["operation"].(string)
	if !ok {
		return newErrorResult("missing required argument %q", "operation"), nil
	}

	op, err := calculator.ParseOperation(name)
	if err != nil {
		logger.Error("Failed to parse operation", "error", err)
		return newErrorResult("%v", err), nil
	}

	return s.apply(op, request.Params.Arguments)
}

// Greet handles the greet command
func (s *MCPCalculatorServer) Greet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received greet request")

	name, ok := request.Params.Arguments["name"].(string)
	if !ok {
		return newErrorResult("missing required argument %q", "name"), nil
	}

	return newToolResultJSON(types.NewGreetResponse(name, greeter.Greet(name)))
}

func (s *MCPCalculatorServer) apply(op calculator.Operation, args map[string]interface{}) (*mcp.CallToolResult, error) {
	a, err := operandArg(args, "a")
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	b, err := operandArg(args, "b")
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	result, err := s.calc.Apply(op, a, b)
	if err != nil {
		logger.Error("Operation failed", "error", err, "operation", op, "a", a, "b", b)
		return newErrorResult("%v", err), nil
	}

	logger.Debug("Operation succeeded", "operation", op, "result", result)
	return newToolResultJSON(types.NewOperationResponse(op, a, b, result))
}

// operandArg reads a numeric argument sent either as a string or as a JSON number
func operandArg(args map[string]interface{}, key string) (calculator.Number, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return calculator.Number{}, fmt.Errorf("missing required argument %q", key)
	}

	switch val := v.(type) {
	case string:
		n, err := calculator.ParseNumber(val)
		if err != nil {
			return calculator.Number{}, fmt.Errorf("argument %q: %w", key, err)
		}
		return n, nil
	case float64:
		return calculator.FromFloat64(val), nil
	case json.Number:
		n, err := calculator.ParseNumber(val.String())
		if err != nil {
			return calculator.Number{}, fmt.Errorf("argument %q: %w", key, err)
		}
		return n, nil
	default:
		return calculator.Number{}, fmt.Errorf("argument %q must be a number, got %T", key, v)
	}
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

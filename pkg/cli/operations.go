package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/greeter"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

var operationShort = map[calculator.Operation]string{
	calculator.OpAdd:      "Add two numbers",
	calculator.OpSubtract: "Subtract b from a",
	calculator.OpMultiply: "Multiply two numbers",
	calculator.OpDivide:   "Divide a by b (always a float result)",
}

// newOperationCmd creates the command for one arithmetic operation
func newOperationCmd(op calculator.Operation) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   string(op) + " <a> <b>",
		Short: operationShort[op],
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := calculator.ParseNumber(args[0])
			if err != nil {
				return err
			}
			b, err := calculator.ParseNumber(args[1])
			if err != nil {
				return err
			}

			result, err := calculator.New().Apply(op, a, b)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, types.NewOperationResponse(op, a, b, result))
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

// newGreetCmd creates the greet command
func newGreetCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "greet <name>",
		Short: "Print a greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			greeting := greeter.Greet(args[0])
			if asJSON {
				return writeJSON(cmd, types.NewGreetResponse(args[0], greeting))
			}
			fmt.Fprintln(cmd.OutOrStdout(), greeting)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

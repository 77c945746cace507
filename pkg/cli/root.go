// Package cli wires the calculator, the MCP server and the demo page into
// the calc command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/config"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

// options holds the global flags and the config they resolve to
type options struct {
	version    string
	configPath string
	debug      bool
	cfg        *config.Config
}

// NewRootCmd builds the calc command tree
func NewRootCmd(version string) *cobra.Command {
	opts := &options{version: version}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Integer and floating-point calculator",
		Long: `calc performs the four elementary arithmetic operations.

Integer operands give integer results for add, subtract and multiply;
any decimal operand gives a float result. divide always returns a float
and refuses a zero divisor.

Negative operands can be given directly:
  calc add 5 -3
  calc subtract -5 3`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a TOML config file (default calc.toml, or $CALC_CONFIG)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	for _, op := range calculator.Operations {
		cmd.AddCommand(newOperationCmd(op))
	}
	cmd.AddCommand(newGreetCmd())
	cmd.AddCommand(newMCPCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newVersionCmd(opts))

	return cmd
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.debug {
		cfg.Log.Level = "debug"
	}
	logger.Configure(cfg.Log.Level, cmd.ErrOrStderr())
	logger.Debug("Configuration loaded", "level", cfg.Log.Level, "addr", cfg.Demo.Addr)

	o.cfg = cfg
	return nil
}

// newVersionCmd creates the version command
func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the calc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), opts.version)
		},
	}
}

// run executes cmd with args, keeping negative operands away from the flag parser
func run(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(operandArgs(cmd, args))
	return cmd.Execute()
}

// Execute runs the calc command and exits non-zero on failure
func Execute(version string) {
	if err := run(NewRootCmd(version), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

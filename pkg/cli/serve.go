package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/sunfmin/mcp-go-calculator/pkg/demo"
	"github.com/sunfmin/mcp-go-calculator/pkg/mcp"
)

// newMCPCmd creates the command serving the MCP tools on stdio
func newMCPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve calculator tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.NewMCPCalculatorServer(opts.cfg.MCP.Name, opts.version).ServeStdio()
		},
	}
}

// newServeCmd creates the command serving the demo page
func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator demo page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = opts.cfg.Demo.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			renderer := demo.NewRenderer(opts.cfg.Demo.Title, opts.version)
			return demo.ListenAndServe(ctx, addr, renderer.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides demo.addr)")

	return cmd
}

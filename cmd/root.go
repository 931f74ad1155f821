// Package cmd is the graphpad command line.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"graphpad/config"
)

var version = "0.3.0"

// NewRootCmd builds the graphpad command tree. Without a subcommand it opens
// the interactive editor.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "graphpad",
		Short: "graphpad: sketch node and edge diagrams with the mouse",
		Long: brand.Sprint("graphpad") + " sketches node and edge diagrams in the terminal\n" +
			subtle.Sprint("Click empty space to add a node, click two nodes to link them, right-click to delete"),
		Example: `  graphpad                              # Start the editor
  graphpad --node-bounds 40             # Larger click targets
  graphpad replay session.json          # Replay a recorded session
  graphpad replay --example > demo.json # Write an example session
  graphpad config                       # Show the effective settings`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEdit,
	}
	root.SetVersionTemplate("graphpad {{ .Version }}\n")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		editCmd(),
		replayCmd(),
		configCmd(),
	)
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		bad.Fprintf(os.Stderr, "graphpad: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration named by the --config flag, with the
// command's flags applied on top.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

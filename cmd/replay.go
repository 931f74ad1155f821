package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"graphpad/demo"
	"graphpad/diagram"
	"graphpad/editor"
	"graphpad/logging"
)

func replayCmd() *cobra.Command {
	var (
		realtime bool
		example  bool
	)

	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Replay a recorded input script and print the resulting graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if example {
				fmt.Fprintln(cmd.OutOrStdout(), demo.GenerateExample())
				return nil
			}
			if len(args) == 0 {
				return errors.New("replay needs a script file (or --example)")
			}

			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogOptions())
			if err != nil {
				return err
			}
			defer log.Sync()

			script, err := demo.LoadScript(args[0])
			if err != nil {
				return err
			}

			// Hover throttling follows the wall clock, so it only applies
			// when the script is paced.
			resolution := cfg.HoverResolution()
			if !realtime {
				resolution = 0
			}
			ed := editor.New(diagram.NewGraph(), cfg.Tolerance(),
				editor.WithLogger(log),
				editor.WithHoverResolution(resolution))

			n, err := demo.NewPlayer(ed, realtime, log).Play(cmd.Context(), script)
			log.Info("replay finished", zap.String("script", script.Name), zap.Int("commands", n))
			if err != nil {
				return fmt.Errorf("replay stopped after %d of %d commands: %w", n, len(script.Commands), err)
			}

			printGraph(cmd.OutOrStdout(), script, ed.Graph())
			return nil
		},
	}

	cmd.Flags().BoolVar(&realtime, "realtime", false, "Wait between commands as the script asks")
	cmd.Flags().BoolVar(&example, "example", false, "Print an example script and exit")
	return cmd
}

func printGraph(w io.Writer, script *demo.Script, g *diagram.Graph) {
	title := script.Name
	if title == "" {
		title = "replay"
	}
	brand.Fprintf(w, "%s\n", title)
	if script.Description != "" {
		subtle.Fprintf(w, "%s\n", script.Description)
	}
	fmt.Fprintln(w)

	components := diagram.Components(g)
	good.Fprintf(w, "  %d nodes, %d edges, %d components\n\n", g.NodeCount(), g.EdgeCount(), len(components))

	for _, n := range g.Nodes() {
		fmt.Fprintf(w, "  %s %-12q %s\n", info.Sprint("node"), n.Label,
			subtle.Sprintf("(%g, %g)", n.Position.X, n.Position.Y))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(w, "  %s %-12q %s -- %s\n", info.Sprint("edge"), e.Label, e.U.Label, e.V.Label)
	}
}

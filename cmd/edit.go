package cmd

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"graphpad/config"
	"graphpad/diagram"
	"graphpad/editor"
	"graphpad/logging"
	"graphpad/terminal"
)

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive editor",
		Long: `Open the interactive editor.

Mouse:
  left click     add a node, select, or link the selected node
  left drag      move a node
  right click    delete the node or edge under the pointer

Keys:
  any text       append to the selected or newest label
  Backspace      delete one character
  Ctrl-W         delete one word
  Esc            clear the selection
  Ctrl-C, Ctrl-Q quit

The config file is watched and changes apply without a restart.`,
		Args: cobra.NoArgs,
		RunE: runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The screen owns stderr, so logs go to a file or nowhere.
	log := logging.Nop()
	if cfg.Log.File != "" {
		if log, err = logging.New(cfg.LogOptions()); err != nil {
			return err
		}
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	updates, err := config.Watch(ctx, path, cmd.Flags(), log)
	if err != nil {
		log.Warn("config reload disabled", zap.Error(err))
	}

	view := terminal.NewView(cfg.Nodes.Radius)
	ed := editor.New(diagram.NewGraph(), cfg.Tolerance(),
		editor.WithView(view),
		editor.WithOutliner(view),
		editor.WithLogger(log),
		editor.WithHoverResolution(cfg.HoverResolution()))
	grid := terminal.Grid{CellWidth: cfg.Terminal.CellWidth, CellHeight: cfg.Terminal.CellHeight}

	log.Info("editor started",
		zap.Float64("node_bounds", cfg.Nodes.BoundsRadius),
		zap.Float64("edge_bounds", cfg.Edges.BoundsDistance))
	return terminal.NewApp(screen, ed, view, grid, log).Run(ctx, updates)
}

// Package terminal runs the editor interactively on a tcell screen.
package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"graphpad/config"
	"graphpad/editor"
)

const mouseButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// App feeds terminal input into an editor and redraws after every event.
// All editor calls happen on the goroutine running Run.
type App struct {
	screen tcell.Screen
	editor *editor.Editor
	view   *View
	grid   Grid
	log    *zap.Logger

	buttons tcell.ButtonMask // Buttons held at the previous mouse event
	pressed bool
	pressCX int
	pressCY int
	tried   bool // StartDrag already attempted for this press
	status  string
}

// NewApp creates an app drawing on an initialized screen.
func NewApp(screen tcell.Screen, ed *editor.Editor, view *View, grid Grid, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		screen: screen,
		editor: ed,
		view:   view,
		grid:   grid,
		log:    log,
	}
}

// Run processes events until the user quits, the screen is finalized or ctx
// is done. Configs received on updates are applied between events.
func (a *App) Run(ctx context.Context, updates <-chan *config.Config) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				return nil
			}
		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			a.Apply(cfg)
		}
		a.draw()
	}
}

// Apply switches the running app to a new configuration.
func (a *App) Apply(cfg *config.Config) {
	a.editor.SetTolerance(cfg.Tolerance())
	a.editor.SetHoverResolution(cfg.HoverResolution())
	a.view.SetNodeRadius(cfg.Nodes.Radius)
	a.grid = Grid{CellWidth: cfg.Terminal.CellWidth, CellHeight: cfg.Terminal.CellHeight}
	a.status = "config reloaded"
	a.log.Info("config applied",
		zap.Float64("node_bounds", cfg.Nodes.BoundsRadius),
		zap.Float64("edge_bounds", cfg.Edges.BoundsDistance))
}

// handleEvent returns false when the app should stop.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := a.grid.ToPoint(cx, cy)
	btn := ev.Buttons() & mouseButtons
	prev := a.buttons
	a.buttons = btn

	switch {
	case btn&tcell.ButtonPrimary != 0 && prev&tcell.ButtonPrimary == 0:
		a.pressed = true
		a.tried = false
		a.pressCX, a.pressCY = cx, cy

	case btn&tcell.ButtonPrimary != 0:
		if a.pressed && !a.tried && (cx != a.pressCX || cy != a.pressCY) {
			a.tried = true
			px, py := a.grid.ToPoint(a.pressCX, a.pressCY)
			a.editor.StartDrag(px, py)
		}
		if a.editor.IsDragging() {
			a.editor.Drag(x, y)
		}

	case prev&tcell.ButtonPrimary != 0:
		if a.editor.IsDragging() {
			a.editor.EndDrag(x, y)
		} else if a.pressed {
			px, py := a.grid.ToPoint(a.pressCX, a.pressCY)
			a.editor.PrimaryClick(px, py)
		}
		a.pressed = false
	}

	if btn&tcell.ButtonSecondary != 0 && prev&tcell.ButtonSecondary == 0 {
		a.editor.SecondaryClick(x, y)
	}

	if btn == tcell.ButtonNone && prev == tcell.ButtonNone {
		a.editor.Hover(x, y)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return false
	case tcell.KeyEscape:
		a.editor.ClearSelection()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.editor.DeleteRune()
	case tcell.KeyCtrlW:
		a.editor.DeleteWordBackward()
	case tcell.KeyRune:
		if !a.editor.TypeRune(ev.Rune()) {
			a.status = "nothing to label"
		}
	}
	return true
}

func (a *App) draw() {
	a.view.Draw(a.screen, a.editor, a.grid, a.status)
	a.status = ""
	a.screen.Show()
}

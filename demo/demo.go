// Package demo replays recorded pointer and keyboard input against an editor.
package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"graphpad/hittest"
)

// Command types understood by the player.
const (
	CmdClick      = "click"      // Primary click at X,Y
	CmdRightClick = "rightclick" // Secondary click at X,Y
	CmdMove       = "move"       // Pointer motion to X,Y
	CmdDrag       = "drag"       // Drag from X,Y to ToX,ToY
	CmdType       = "type"       // Type Value
	CmdBackspace  = "backspace"  // Delete one rune
	CmdEscape     = "escape"     // Clear the selection
	CmdPause      = "pause"      // Wait only
)

// Command represents a single input event
type Command struct {
	Type  string  `json:"type"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	ToX   float64 `json:"to_x,omitempty"`
	ToY   float64 `json:"to_y,omitempty"`
	Value string  `json:"value,omitempty"`
	Delay int     `json:"delay,omitempty"` // ms to wait after this command when paced
}

// Script represents a recorded session
type Script struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Commands    []Command `json:"commands"`
	BaseDelay   int       `json:"base_delay"` // default delay between commands
}

// Target is the input surface a script drives.
type Target interface {
	PrimaryClick(x, y float64)
	SecondaryClick(x, y float64)
	Hover(x, y float64) hittest.Hit
	StartDrag(x, y float64) bool
	Drag(x, y float64)
	EndDrag(x, y float64)
	TypeText(s string)
	DeleteRune() bool
	ClearSelection()
}

// LoadScript reads a script from a file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read demo script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and checks a script
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse demo script: %w", err)
	}
	for i, cmd := range script.Commands {
		switch cmd.Type {
		case CmdClick, CmdRightClick, CmdMove, CmdDrag, CmdType, CmdBackspace, CmdEscape, CmdPause:
		default:
			return nil, fmt.Errorf("command %d: unknown type %q", i, cmd.Type)
		}
		if cmd.Delay < 0 {
			return nil, fmt.Errorf("command %d: negative delay", i)
		}
	}
	if script.BaseDelay == 0 {
		script.BaseDelay = 300 // 300ms default
	}
	return &script, nil
}

// Player plays scripts back
type Player struct {
	target Target
	log    *zap.Logger
	paced  bool
}

// NewPlayer creates a player driving target. When paced is set, the player
// waits between commands as the script asks; otherwise it runs flat out.
func NewPlayer(target Target, paced bool, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{target: target, log: log, paced: paced}
}

// Play runs every command in order and returns how many ran. It stops early
// when ctx is cancelled.
func (p *Player) Play(ctx context.Context, script *Script) (int, error) {
	for i, cmd := range script.Commands {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		p.apply(cmd)
		p.log.Debug("replayed", zap.Int("index", i), zap.String("type", cmd.Type))

		if !p.paced {
			continue
		}
		delay := cmd.Delay
		if delay == 0 {
			delay = script.BaseDelay
		}
		if err := sleep(ctx, time.Duration(delay)*time.Millisecond); err != nil {
			return i + 1, err
		}
	}
	return len(script.Commands), nil
}

func (p *Player) apply(cmd Command) {
	switch cmd.Type {
	case CmdClick:
		p.target.PrimaryClick(cmd.X, cmd.Y)
	case CmdRightClick:
		p.target.SecondaryClick(cmd.X, cmd.Y)
	case CmdMove:
		p.target.Hover(cmd.X, cmd.Y)
	case CmdDrag:
		if p.target.StartDrag(cmd.X, cmd.Y) {
			p.target.Drag(cmd.ToX, cmd.ToY)
			p.target.EndDrag(cmd.ToX, cmd.ToY)
		}
	case CmdType:
		p.target.TypeText(cmd.Value)
	case CmdBackspace:
		p.target.DeleteRune()
	case CmdEscape:
		p.target.ClearSelection()
	case CmdPause:
		// Just pause, no action
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// GenerateExample creates an example script
func GenerateExample() string {
	script := Script{
		Name:        "Connect and prune",
		Description: "Creates three nodes, links them, renames one and deletes another",
		BaseDelay:   400,
		Commands: []Command{
			{Type: CmdClick, X: 100, Y: 100},
			{Type: CmdType, Value: " start"},
			{Type: CmdClick, X: 300, Y: 100},
			{Type: CmdClick, X: 200, Y: 250},

			{Type: CmdClick, X: 100, Y: 100}, // Select start
			{Type: CmdClick, X: 300, Y: 100}, // Connect to 1
			{Type: CmdClick, X: 300, Y: 100},
			{Type: CmdClick, X: 200, Y: 250},

			{Type: CmdDrag, X: 200, Y: 250, ToX: 200, ToY: 300},
			{Type: CmdRightClick, X: 300, Y: 100, Delay: 1000},
		},
	}

	data, _ := json.MarshalIndent(script, "", "  ")
	return string(data)
}

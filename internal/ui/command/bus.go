package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatkit/floatnav/internal/logging/events"
	"github.com/floatkit/floatnav/internal/menu"
)

// Request names one menu action to run against the current workspace
// context.
type Request struct {
	ID    string
	Label string
	Run   menu.Action
	Item  menu.Item
}

// Bus runs menu actions off the update loop and normalises their outcome
// into a menu.ActionResult message.
type Bus struct{}

func New() *Bus {
	return &Bus{}
}

// Execute wraps the request into a Bubble Tea command. Requests that cannot
// produce a result on their own resolve to an ActionResult anyway, so the
// model never waits on a command that will not report back.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return menu.ActionResult{Err: fmt.Errorf("%s: no action bound", req.ID)}
		}
		cmd := req.Run(ctx, req.Item)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return menu.ActionResult{}
		}
		msg := cmd()
		if result, ok := msg.(menu.ActionResult); ok {
			events.Command.Result(req.ID, req.Label, outcome(result))
			return result
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

func outcome(result menu.ActionResult) string {
	if result.Err != nil {
		return "error"
	}
	return "ok"
}

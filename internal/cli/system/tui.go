package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifeboost/internal/app"
	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/notifier"
	"github.com/julianstephens/lifeboost/internal/tui"
)

type TuiCmd struct {
	View string `arg:"" optional:"" help:"Tab to open on: hydration, bedtime, meditation, workout or water."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	inbox := &tui.Inbox{}
	if ctx.Emitter == nil {
		// Terminal output would corrupt the alternate screen.
		ctx.Emitter = notifier.Multi(inbox, app.NewEmitter(ctx.Config, nil))
	} else {
		ctx.Emitter = notifier.Multi(inbox, ctx.Emitter)
	}

	a, err := ctx.App()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(a, inbox, tui.TabFor(c.View)), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

package sessions

import (
	"github.com/julianstephens/lifeboost/internal/cli"
)

type MeditateCmd struct {
	Start  MeditateStartCmd  `cmd:"" help:"Start a meditation session."`
	Reset  MeditateResetCmd  `cmd:"" help:"Reset the session and undo today's completion."`
	Status MeditateStatusCmd `cmd:"" help:"Show the meditation timer." default:"1"`
}

type MeditateStartCmd struct {
	Seconds int `help:"Session length in seconds. Defaults to the configured length."`
}

func (c *MeditateStartCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	seconds := c.Seconds
	if seconds == 0 {
		seconds = ctx.Config.Reminders.MeditationSeconds
	}
	if err := a.StartMeditation(seconds); err != nil {
		return err
	}
	ctx.Println("🧘 Meditation started. Breathe in, breathe out.")
	ctx.Println(cli.FormatStatus(a.Meditation.Status()))
	return nil
}

type MeditateResetCmd struct{}

func (c *MeditateResetCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	a.Meditation.Reset()
	ctx.Println("Meditation timer reset.")
	return nil
}

type MeditateStatusCmd struct{}

func (c *MeditateStatusCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	ctx.Println(cli.FormatStatus(a.Meditation.Status()))
	ctx.Printf("Sessions completed: %d\n", a.Progress.Stats().MeditationCompletions)
	return nil
}

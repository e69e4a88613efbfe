package reminders

import (
	"github.com/julianstephens/lifeboost/internal/cli"
)

type HydrateCmd struct {
	Start  HydrateStartCmd  `cmd:"" help:"Start the hydration reminder."`
	Stop   HydrateStopCmd   `cmd:"" help:"Stop the hydration reminder."`
	Status HydrateStatusCmd `cmd:"" help:"Show the hydration reminder." default:"1"`
}

type HydrateStartCmd struct {
	Every int `help:"Reminder interval in minutes. Defaults to the configured interval."`
}

func (c *HydrateStartCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	minutes := c.Every
	if minutes == 0 {
		minutes = ctx.Config.Reminders.HydrationMinutes
	}
	if err := a.StartHydration(minutes); err != nil {
		return err
	}
	ctx.Printf("💧 Hydration reminder set for every %d minutes.\n", minutes)
	ctx.Println(cli.FormatStatus(a.Hydration.Status()))
	return nil
}

type HydrateStopCmd struct{}

func (c *HydrateStopCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	a.Hydration.Stop()
	ctx.Println("Hydration reminder stopped.")
	return nil
}

type HydrateStatusCmd struct{}

func (c *HydrateStatusCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	ctx.Println(cli.FormatStatus(a.Hydration.Status()))
	return nil
}

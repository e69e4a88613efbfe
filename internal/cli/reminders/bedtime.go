package reminders

import (
	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/constants"
)

type BedtimeCmd struct {
	Set    BedtimeSetCmd    `cmd:"" help:"Schedule the nightly bedtime reminder."`
	Cancel BedtimeCancelCmd `cmd:"" help:"Cancel the bedtime reminder."`
	Status BedtimeStatusCmd `cmd:"" help:"Show the bedtime reminder." default:"1"`
}

type BedtimeSetCmd struct {
	Time string `arg:"" optional:"" help:"Bedtime as HH:MM (24-hour). Defaults to the configured bedtime."`
}

func (c *BedtimeSetCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	hhmm := c.Time
	if hhmm == "" {
		hhmm = ctx.Config.Reminders.Bedtime
	}
	if err := a.SetBedtime(hhmm); err != nil {
		return err
	}
	target := a.Bedtime.Target()
	ctx.Printf("🌙 Bedtime reminder set for %s, next on %s.\n", hhmm, target.Format(constants.DateFormat+" "+constants.TimeFormat))
	return nil
}

type BedtimeCancelCmd struct{}

func (c *BedtimeCancelCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	a.Bedtime.Stop()
	ctx.Println("Bedtime reminder cancelled.")
	return nil
}

type BedtimeStatusCmd struct{}

func (c *BedtimeStatusCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	ctx.Println(cli.FormatStatus(a.Bedtime.Status()))
	return nil
}

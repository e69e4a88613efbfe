package sessions

import (
	"github.com/julianstephens/lifeboost/internal/cli"
)

// StatsCmd prints the profile page: medals, streaks and the medal guide.
type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	ctx.Printf("%s", a.Summary().Report())
	if rec, ok := a.Records.Today(); ok {
		ctx.Printf("\nToday's water: %.2f / %.2f L\n", rec.Intake, rec.Goal)
	}
	return nil
}

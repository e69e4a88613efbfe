package water

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/validation"
)

type WaterCmd struct {
	Log       WaterLogCmd       `cmd:"" help:"Record today's goal and intake."`
	Add       WaterAddCmd       `cmd:"" help:"Add (or with a negative amount, remove) litres from today's intake."`
	Goal      WaterGoalCmd      `cmd:"" help:"Change today's goal."`
	Note      WaterNoteCmd      `cmd:"" help:"Attach a note to a day's record."`
	ClearNote WaterClearNoteCmd `cmd:"" name:"clear-note" help:"Remove the note from a day's record."`
	History   WaterHistoryCmd   `cmd:"" help:"Show the hydration log." default:"1"`
}

type WaterLogCmd struct {
	Goal        float64  `help:"Daily goal in litres."`
	Intake      *float64 `help:"Litres drunk today. Keeps today's intake when omitted."`
	Note        *string  `help:"Optional note for today."`
	Interactive bool     `short:"i" help:"Fill the values in with a form."`
}

func (c *WaterLogCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	today, logged := a.Records.Today()
	goal, intake, note := c.Goal, 0.0, c.Note
	if goal == 0 {
		goal = ctx.Config.Water.Goal
		if logged {
			goal = today.Goal
		}
	}
	if c.Intake != nil {
		intake = *c.Intake
	} else if logged {
		intake = today.Intake
	}
	if c.Interactive {
		goal, intake, note, err = logForm(goal, intake, note)
		if err != nil {
			return err
		}
	}

	history, err := a.LogWater(goal, intake, note)
	if err != nil {
		return err
	}
	printToday(ctx, history)
	return nil
}

// logForm asks for goal, intake and note, prefilled with the current values.
func logForm(goal, intake float64, note *string) (float64, float64, *string, error) {
	goalStr := strconv.FormatFloat(goal, 'f', -1, 64)
	intakeStr := strconv.FormatFloat(intake, 'f', -1, 64)
	noteStr := ""
	if note != nil {
		noteStr = *note
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily goal (litres)").
				Value(&goalStr).
				Validate(func(s string) error {
					v, err := parseLitres(s)
					if err != nil {
						return err
					}
					return validation.Goal(v)
				}),
			huh.NewInput().
				Title("Intake so far (litres)").
				Value(&intakeStr).
				Validate(func(s string) error {
					v, err := parseLitres(s)
					if err != nil {
						return err
					}
					return validation.Intake(v)
				}),
			huh.NewText().
				Title("How do you feel today?").
				Value(&noteStr),
		),
	)
	if err := form.Run(); err != nil {
		return 0, 0, nil, err
	}

	goal, _ = parseLitres(goalStr)
	intake, _ = parseLitres(intakeStr)
	var outNote *string
	if trimmed := strings.TrimSpace(noteStr); trimmed != "" {
		outNote = &trimmed
	}
	return goal, intake, outNote, nil
}

func parseLitres(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", validation.ErrInvalid, s)
	}
	return v, nil
}

type WaterAddCmd struct {
	Litres float64 `arg:"" help:"Litres to add; negative to remove."`
}

func (c *WaterAddCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	history, err := a.AddWater(c.Litres)
	if err != nil {
		return err
	}
	printToday(ctx, history)
	return nil
}

type WaterGoalCmd struct {
	Litres float64 `arg:"" help:"New goal in litres."`
}

func (c *WaterGoalCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	history, err := a.SetWaterGoal(c.Litres)
	if err != nil {
		return err
	}
	printToday(ctx, history)
	return nil
}

type WaterNoteCmd struct {
	Date string `arg:"" help:"Day to annotate (YYYY-MM-DD)."`
	Text string `arg:"" help:"Note text."`
}

func (c *WaterNoteCmd) Run(ctx *cli.Context) error {
	if err := validation.Date(c.Date); err != nil {
		return err
	}
	a, err := ctx.App()
	if err != nil {
		return err
	}
	if !a.Records.SetNote(c.Date, c.Text) {
		return fmt.Errorf("no record for %s", c.Date)
	}
	ctx.Printf("Note saved for %s.\n", c.Date)
	return nil
}

type WaterClearNoteCmd struct {
	Date string `arg:"" help:"Day to clear (YYYY-MM-DD)."`
}

func (c *WaterClearNoteCmd) Run(ctx *cli.Context) error {
	if err := validation.Date(c.Date); err != nil {
		return err
	}
	a, err := ctx.App()
	if err != nil {
		return err
	}
	if !a.Records.ClearNote(c.Date) {
		return fmt.Errorf("no record for %s", c.Date)
	}
	ctx.Printf("Note cleared for %s.\n", c.Date)
	return nil
}

type WaterHistoryCmd struct {
	Limit int `help:"Show at most this many days." default:"14"`
}

func (c *WaterHistoryCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	history := a.Records.Load()
	if len(history) == 0 {
		ctx.Println("No water logged yet. Try 'lifeboost water add 0.25'.")
		return nil
	}
	if c.Limit > 0 && len(history) > c.Limit {
		history = history[:c.Limit]
	}

	ctx.Printf("%-10s  %6s  %6s  %4s  %s\n", "Date", "Intake", "Goal", "Met", "Note")
	for _, rec := range history {
		met := ""
		if rec.MetGoal() {
			met = "✓"
		}
		ctx.Printf("%-10s  %6.2f  %6.2f  %4s  %s\n", rec.Date, rec.Intake, rec.Goal, met, rec.Feedback)
	}
	ctx.Printf("\nStreak: %d day(s)\n", a.Progress.Stats().HydrationStreak)
	return nil
}

// printToday shows the newest record, which every mutation makes today's.
func printToday(ctx *cli.Context, history []models.DailyRecord) {
	if len(history) == 0 {
		return
	}
	rec := history[0]
	ctx.Printf("%s: %.2f / %.2f L (%.0f%%)\n", rec.Date, rec.Intake, rec.Goal, rec.Progress())
	if rec.MetGoal() {
		ctx.Println("🎉 Goal reached!")
	}
}

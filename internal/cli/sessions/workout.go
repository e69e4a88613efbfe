package sessions

import (
	"errors"
	"fmt"

	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/workout"
)

type WorkoutCmd struct {
	Start  WorkoutStartCmd  `cmd:"" help:"Start a workout session timer."`
	Reset  WorkoutResetCmd  `cmd:"" help:"Reset the session, clear the checklist and undo today's completion."`
	Status WorkoutStatusCmd `cmd:"" help:"Show the workout timer and checklist." default:"1"`
	Check  WorkoutCheckCmd  `cmd:"" help:"Check off an exercise."`
	List   WorkoutListCmd   `cmd:"" help:"List today's exercises."`
}

type WorkoutStartCmd struct {
	Minutes int `help:"Session length in minutes. Defaults to the configured length."`
}

func (c *WorkoutStartCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	minutes := c.Minutes
	if minutes == 0 {
		minutes = ctx.Config.Reminders.WorkoutMinutes
	}
	if err := a.StartWorkout(minutes); err != nil {
		return err
	}
	ctx.Println("💪 Workout started.")
	ctx.Println(cli.FormatStatus(a.Workout.Status()))
	return nil
}

type WorkoutResetCmd struct{}

func (c *WorkoutResetCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	a.Workout.Reset()
	ctx.Println("Workout reset.")
	return nil
}

type WorkoutStatusCmd struct{}

func (c *WorkoutStatusCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	ctx.Println(cli.FormatStatus(a.Workout.Status()))
	printChecklist(ctx, a.Checklist.Items())
	if a.Checklist.Completed() {
		ctx.Println("Today's workout is complete.")
	}
	return nil
}

type WorkoutCheckCmd struct {
	ID string `arg:"" help:"Exercise ID, see 'lifeboost workout list'."`
}

func (c *WorkoutCheckCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	done, err := a.Checklist.Toggle(c.ID)
	switch {
	case errors.Is(err, workout.ErrUnknownExercise):
		return fmt.Errorf("%w: %q", err, c.ID)
	case err != nil:
		return err
	}
	printChecklist(ctx, a.Checklist.Items())
	if done {
		ctx.Println("💪 Workout complete! Every exercise is done for today.")
	}
	return nil
}

type WorkoutListCmd struct{}

func (c *WorkoutListCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}
	printChecklist(ctx, a.Checklist.Items())
	return nil
}

func printChecklist(ctx *cli.Context, items []models.ChecklistItem) {
	for _, it := range items {
		box := "[ ]"
		if it.Done {
			box = "[x]"
		}
		ctx.Printf("%s %-14s %s\n", box, it.ID, models.ExerciseName(it.ID))
	}
}

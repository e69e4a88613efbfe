package system

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/validation"
)

// LoginCmd stores a display name. There are no accounts or passwords.
type LoginCmd struct {
	Name string `arg:"" optional:"" help:"Your name. Prompted for when omitted."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		err := huh.NewInput().
			Title("What should we call you?").
			Value(&name).
			Validate(validation.Name).
			Run()
		if err != nil {
			return err
		}
	}

	if err := a.Login(name); err != nil {
		return err
	}
	ctx.Printf("Welcome, %s!\n", a.UserName())
	return nil
}

// LogoutCmd forgets the user and every reminder, session and record.
type LogoutCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Log out and erase all lifeboost data?").
			Affirmative("Erase").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.Println("Logout cancelled.")
			return nil
		}
	}

	if !a.Logout() {
		ctx.Println("⚠ Some data could not be removed; see the log for details.")
		return nil
	}
	ctx.Println("Logged out. All reminders and records were cleared.")
	return nil
}

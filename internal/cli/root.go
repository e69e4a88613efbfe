package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/lifeboost/internal/app"
	"github.com/julianstephens/lifeboost/internal/clock"
	"github.com/julianstephens/lifeboost/internal/config"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/countdown"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/notifier"
	"github.com/julianstephens/lifeboost/internal/storage"
	"github.com/julianstephens/lifeboost/internal/utils"
)

// Context is passed to every command's Run method.
type Context struct {
	Config       *config.Config
	SettingsPath string
	Store        storage.Provider
	Out          io.Writer

	// Clock and Emitter override the defaults built from Config. Tests set them.
	Clock   clock.Clock
	Emitter notifier.Emitter

	app *app.App
}

// App returns the application over Store, resuming every countdown from its
// persisted record on first use.
func (c *Context) App() (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}
	a, err := app.New(app.Options{
		Config:   c.Config,
		Provider: c.Store,
		Clock:    c.Clock,
		Emitter:  c.Emitter,
		Output:   c.Stdout(),
	})
	if err != nil {
		return nil, err
	}
	a.ResumeAll()
	c.app = a
	return a, nil
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// FormatStatus renders a countdown status as one line.
func FormatStatus(s countdown.Status) string {
	name := s.Name
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	switch s.Mode {
	case models.ModeRunning:
		return fmt.Sprintf("%s: running, %s left (due %s)", name, utils.FormatRemaining(s.Remaining), s.Target.Format(constants.TimeFormat))
	case models.ModeExpired:
		return fmt.Sprintf("%s: complete", name)
	default:
		return fmt.Sprintf("%s: idle (%s)", name, FormatPeriod(s.Period))
	}
}

// FormatPeriod renders a period in seconds the way the user entered it.
func FormatPeriod(seconds int) string {
	d := time.Duration(seconds) * time.Second
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("every %dh", int(d/time.Hour))
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%d min", int(d/time.Minute))
	default:
		return fmt.Sprintf("%d s", seconds)
	}
}

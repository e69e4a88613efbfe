package system

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/logger"
)

// WatchCmd keeps the process alive, ticking every countdown and delivering
// notifications until interrupted.
type WatchCmd struct {
	MetricsAddr string        `help:"Serve /metrics, /health and /status on this address (e.g. :9090)." placeholder:"ADDR"`
	For         time.Duration `help:"Stop after this long. Runs until interrupted when zero."`
}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if c.For > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, c.For)
		defer cancel()
	}

	if c.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              c.MetricsAddr,
			Handler:           a.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "addr", c.MetricsAddr, "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("metrics server shutdown", "error", err)
			}
		}()
		ctx.Printf("Serving metrics on %s\n", c.MetricsAddr)
	}

	for _, e := range a.Engines() {
		ctx.Println(cli.FormatStatus(e.Status()))
	}
	ctx.Println("Watching reminders. Press Ctrl+C to stop.")

	err = a.Run(runCtx, constants.TickInterval)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

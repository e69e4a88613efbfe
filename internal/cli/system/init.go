package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/julianstephens/lifeboost/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Delete the existing database before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if mgr, err := backupManager(ctx); err == nil {
				saved, err := mgr.Create()
				if err != nil {
					return fmt.Errorf("failed to back up existing database: %w", err)
				}
				ctx.Printf("Backed up existing database to: %s\n", saved)
			}
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.Printf("Deleted existing database at: %s\n", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized lifeboost storage at: %s\n", ctx.Store.GetConfigPath())

	if ctx.SettingsPath == "" {
		return nil
	}
	if _, err := os.Stat(ctx.SettingsPath); errors.Is(err, fs.ErrNotExist) {
		if err := ctx.Config.Save(ctx.SettingsPath); err != nil {
			return fmt.Errorf("failed to write settings: %w", err)
		}
		ctx.Printf("Wrote default settings to: %s\n", ctx.SettingsPath)
	}
	return nil
}

package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeboost/internal/backup"
	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/logger"
	"github.com/julianstephens/lifeboost/internal/storage/sqlite"
)

var ErrBackupUnsupported = errors.New("backups are only supported for SQLite storage")

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
}

func backupManager(ctx *cli.Context) (*backup.Manager, error) {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil, ErrBackupUnsupported
	}
	return backup.NewManager(ctx.Store.GetConfigPath(), ctx.Clock), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		ctx.Printf("  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Path or filename of the backup to restore."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path, err := c.resolve(mgr)
	if err != nil {
		return err
	}

	if !c.Yes {
		ctx.Println("⚠️  This replaces your current database with the backup.")
		ctx.Println("    Stop any running 'lifeboost watch' or TUI first.")
		confirmed := false
		err := huh.NewConfirm().
			Title("Restore from " + filepath.Base(path) + "?").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("failed to close database connection", "error", err)
	}

	previous, err := mgr.Restore(path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if previous != "" {
		ctx.Printf("Saved the replaced database as: %s\n", filepath.Base(previous))
	}
	ctx.Println("✓ Database restored successfully!")
	return nil
}

// resolve accepts an existing path or a file name inside the backup directory.
func (c *BackupRestoreCmd) resolve(mgr *backup.Manager) (string, error) {
	if _, err := os.Stat(c.File); err == nil {
		return filepath.Abs(c.File)
	}
	if !filepath.IsAbs(c.File) {
		candidate := filepath.Join(mgr.Dir(), c.File)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("backup file not found: tried %s and %s", c.File, mgr.Dir())
}

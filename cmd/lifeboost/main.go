package main

import (
	"errors"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/cli/reminders"
	"github.com/julianstephens/lifeboost/internal/cli/sessions"
	"github.com/julianstephens/lifeboost/internal/cli/system"
	"github.com/julianstephens/lifeboost/internal/cli/water"
	"github.com/julianstephens/lifeboost/internal/config"
	"github.com/julianstephens/lifeboost/internal/constants"
	lberrors "github.com/julianstephens/lifeboost/internal/errors"
	"github.com/julianstephens/lifeboost/internal/keyring"
	"github.com/julianstephens/lifeboost/internal/logger"
	"github.com/julianstephens/lifeboost/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Database path or PostgreSQL connection string. PostgreSQL strings must NOT embed a password; use the OS keyring or LIFEBOOST_DB_CONNECTION instead." type:"string" placeholder:"PATH"`
	Settings string `help:"Settings file path." type:"path" placeholder:"PATH"`
	Debug    bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize lifeboost storage."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"withargs"`
	Watch    system.WatchCmd      `cmd:"" help:"Run in the foreground and deliver reminders."`
	Login    system.LoginCmd      `cmd:"" help:"Set your display name."`
	Logout   system.LogoutCmd     `cmd:"" help:"Erase your name and all stored data."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the database connection string in the OS keyring."`
	Backup   system.BackupCmd     `cmd:"" help:"Manage SQLite database backups."`
	Hydrate  reminders.HydrateCmd `cmd:"" help:"Manage the hydration reminder."`
	Bedtime  reminders.BedtimeCmd `cmd:"" help:"Manage the daily bedtime reminder."`
	Meditate sessions.MeditateCmd `cmd:"" help:"Run a meditation session."`
	Workout  sessions.WorkoutCmd  `cmd:"" help:"Run a workout and track its exercises."`
	Water    water.WaterCmd       `cmd:"" help:"Log water intake and review history."`
	Stats    sessions.StatsCmd    `cmd:"" help:"Show your achievements and medals."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Wellness companion: hydration, bedtime, meditation and workout reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := config.LoadEnvFiles(".env"); err != nil {
		lberrors.Fatal(err)
	}
	settingsPath := CLI.Settings
	if settingsPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			lberrors.Fatal(err)
		}
		settingsPath = p
	}
	settingsDir := filepath.Dir(settingsPath)

	if err := config.LoadEnvFiles(filepath.Join(settingsDir, ".env")); err != nil {
		lberrors.Fatal(err)
	}
	cfg, err := config.Load(settingsPath)
	if err != nil {
		lberrors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: settingsDir}); err != nil {
		lberrors.Fatal(err)
	}
	logger.Debug("starting", "command", ctx.Command(), "settings", settingsPath)

	store, err := openStore(cfg)
	if err != nil {
		lberrors.Fatal(err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
	}()

	appCtx := &cli.Context{
		Config:       cfg,
		SettingsPath: settingsPath,
		Store:        store,
	}

	if needsStore(ctx.Selected()) {
		if err := loadStore(store); err != nil {
			lberrors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		_ = store.Close()
		lberrors.Fatal(err)
	}
}

// openStore picks the backend: --config, then LIFEBOOST_DB_CONNECTION, then
// the keyring while storage is left at its default, then the settings file.
func openStore(cfg *config.Config) (storage.Provider, error) {
	if CLI.Config != "" {
		return storage.Open(CLI.Config)
	}
	if cfg.ConnectionString != "" {
		return storage.OpenTrusted(cfg.ConnectionString), nil
	}
	if cfg.Storage == constants.DefaultConfigPath {
		connStr, err := keyring.GetConnectionString()
		switch {
		case err == nil:
			logger.Debug("using connection string from keyring")
			return storage.OpenTrusted(connStr), nil
		case !errors.Is(err, keyring.ErrNotFound) && !errors.Is(err, keyring.ErrKeyringUnavailable):
			return nil, err
		}
	}
	return storage.Open(cfg.Storage)
}

// loadStore loads store and closes it again when loading fails, since
// Fatal exits before deferred calls run.
func loadStore(store storage.Provider) error {
	if err := store.Load(); err != nil {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("failed to close store", "error", cerr)
		}
		return err
	}
	return nil
}

// needsStore reports whether node must run against a loaded store. init
// creates it, doctor reports on it and keyring never touches it.
func needsStore(node *kong.Node) bool {
	for n := node; n != nil; n = n.Parent {
		switch n.Name {
		case "init", "doctor", "keyring":
			return false
		}
	}
	return node != nil
}

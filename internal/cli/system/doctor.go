package system

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/keyring"
	"github.com/julianstephens/lifeboost/internal/storage"
	"github.com/julianstephens/lifeboost/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(*cli.Context) error
	needsDB  bool
	warnOnly bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Settings valid", run: checkSettings},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Stored records", run: checkRecords, needsDB: true},
	{name: "OS keyring", run: checkKeyring, warnOnly: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true
	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == checks[0].name {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, _, err := ctx.Store.Get(constants.KeyUserName); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	if ctx.Config == nil {
		return errors.New("no settings loaded")
	}
	return ctx.Config.Validate()
}

func checkClockTimezone(ctx *cli.Context) error {
	loc := time.Local
	if ctx.Config != nil {
		l, err := utils.LoadLocation(ctx.Config.Timezone)
		if err != nil {
			return err
		}
		loc = l
	}
	now := time.Now().In(loc)
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}

// checkRecords reports every persisted key whose value is not valid JSON.
// Such keys are treated as absent at runtime, so their data is lost.
func checkRecords(ctx *cli.Context) error {
	kv := storage.NewKV(ctx.Store)
	var bad []error
	for _, key := range constants.PersistedKeys {
		if key == constants.KeyUserName {
			continue
		}
		var raw json.RawMessage
		if kv.Probe(key, &raw) == storage.Unreadable {
			bad = append(bad, fmt.Errorf("%s is unreadable", key))
		}
	}
	return errors.Join(bad...)
}

func checkKeyring(*cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

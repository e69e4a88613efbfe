package system

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/cli/clitest"
	"github.com/julianstephens/lifeboost/internal/config"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/storage/sqlite"
	"github.com/julianstephens/lifeboost/internal/testutil"
)

func sqliteContext(t *testing.T) (*cli.Context, *bytes.Buffer, *testutil.Clock) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "lifeboost.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { _ = store.Close() })

	out := &bytes.Buffer{}
	clk := testutil.NewClock(clitest.Start)
	return &cli.Context{
		Config: config.DefaultConfig(),
		Store:  store,
		Out:    out,
		Clock:  clk,
	}, out, clk
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out, _ := sqliteContext(t)

	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "✓ Backup created: lifeboost-20260504-090000.db")

	out.Reset()
	require.NoError(t, (&BackupListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Available backups (1 total, keeping most recent 7)")
	assert.Contains(t, out.String(), "2026-05-04 09:00:00  lifeboost-20260504-090000.db")
}

func TestBackupListEmpty(t *testing.T) {
	ctx, out, _ := sqliteContext(t)

	require.NoError(t, (&BackupListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No backups found.")
}

func TestBackupRestoreByName(t *testing.T) {
	ctx, out, clk := sqliteContext(t)
	require.NoError(t, ctx.Store.Set(constants.KeyUserName, "Ada"))
	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))

	require.NoError(t, ctx.Store.Set(constants.KeyUserName, "Grace"))
	clk.Advance(time.Minute)

	out.Reset()
	require.NoError(t, (&BackupRestoreCmd{File: "lifeboost-20260504-090000.db", Yes: true}).Run(ctx))
	assert.Contains(t, out.String(), "Saved the replaced database as: lifeboost-20260504-090100.db")
	assert.Contains(t, out.String(), "✓ Database restored successfully!")

	require.NoError(t, ctx.Store.Load())
	name, _, err := ctx.Store.Get(constants.KeyUserName)
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)
}

func TestBackupRestoreMissingFile(t *testing.T) {
	ctx, _, _ := sqliteContext(t)

	err := (&BackupRestoreCmd{File: "nope.db", Yes: true}).Run(ctx)
	assert.ErrorContains(t, err, "backup file not found")
}

func TestBackupRequiresSQLite(t *testing.T) {
	env := clitest.New(t)

	assert.ErrorIs(t, (&BackupCreateCmd{}).Run(env.Ctx), ErrBackupUnsupported)
	assert.ErrorIs(t, (&BackupListCmd{}).Run(env.Ctx), ErrBackupUnsupported)
}

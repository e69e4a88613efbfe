package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/lifeboost/internal/cli/clitest"
	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/validation"
)

func TestLoginStoresTrimmedName(t *testing.T) {
	env := clitest.New(t)

	require.NoError(t, (&LoginCmd{Name: "  Ada  "}).Run(env.Ctx))
	assert.Equal(t, "Welcome, Ada!\n", env.Out.String())

	name, found, err := env.Store.Get(constants.KeyUserName)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Ada", name)
}

func TestLoginRejectsBlankName(t *testing.T) {
	env := clitest.New(t)

	err := (&LoginCmd{Name: "   "}).Run(env.Ctx)
	assert.ErrorIs(t, err, validation.ErrInvalid)
}

func TestLogoutClearsEverything(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, (&LoginCmd{Name: "Ada"}).Run(env.Ctx))
	a, err := env.Ctx.App()
	require.NoError(t, err)
	require.NoError(t, a.StartHydration(30))
	_, err = a.LogWater(2, 1, nil)
	require.NoError(t, err)

	require.NoError(t, (&LogoutCmd{Yes: true}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "Logged out")

	for _, key := range constants.PersistedKeys {
		_, found, err := env.Store.Get(key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
}

func TestDoctorPasses(t *testing.T) {
	gokeyring.MockInit()
	env := clitest.New(t)

	require.NoError(t, (&DoctorCmd{}).Run(env.Ctx))
	out := env.Out.String()
	assert.Contains(t, out, "✓ Database reachable: OK")
	assert.Contains(t, out, "✓ Stored records: OK")
	assert.Contains(t, out, "All diagnostics passed!")
}

func TestDoctorReportsCorruptRecords(t *testing.T) {
	gokeyring.MockInit()
	env := clitest.New(t)
	require.NoError(t, env.Store.Set(constants.KeyUserStats, "{not json"))

	err := (&DoctorCmd{}).Run(env.Ctx)
	require.Error(t, err)
	out := env.Out.String()
	assert.Contains(t, out, "❌ Stored records: FAIL")
	assert.Contains(t, out, constants.KeyUserStats+" is unreadable")
}

func TestDoctorReportsInvalidSettings(t *testing.T) {
	gokeyring.MockInit()
	env := clitest.New(t)
	env.Ctx.Config.Water.Goal = 0

	require.Error(t, (&DoctorCmd{}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "❌ Settings valid: FAIL")
}

func TestWatchStopsAfterDuration(t *testing.T) {
	env := clitest.New(t)

	cmd := &WatchCmd{For: 50 * time.Millisecond, MetricsAddr: "127.0.0.1:0"}
	require.NoError(t, cmd.Run(env.Ctx))

	out := env.Out.String()
	assert.Contains(t, out, "Serving metrics on 127.0.0.1:0")
	assert.Contains(t, out, "Hydration: idle (30 min)")
	assert.Contains(t, out, "Watching reminders.")
}

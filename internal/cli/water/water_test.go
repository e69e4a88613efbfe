package water

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifeboost/internal/cli/clitest"
	"github.com/julianstephens/lifeboost/internal/validation"
)

func TestWaterLogAndHistory(t *testing.T) {
	env := clitest.New(t)
	note := "felt great"

	require.NoError(t, (&WaterLogCmd{Goal: 2, Intake: litres(2.5), Note: &note}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "2026-05-04: 2.50 / 2.00 L (100%)")
	assert.Contains(t, env.Out.String(), "Goal reached!")

	require.NoError(t, (&WaterHistoryCmd{Limit: 14}).Run(env.Reopen()))
	out := env.Out.String()
	assert.Contains(t, out, "2026-05-04")
	assert.Contains(t, out, "felt great")
	assert.Contains(t, out, "Streak: 1 day(s)")
}

func TestWaterLogDefaultsGoal(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, (&WaterLogCmd{Intake: litres(1)}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "1.00 / 2.00 L (50%)")
}

func litres(v float64) *float64 { return &v }

func TestWaterLogGoalOnlyKeepsIntake(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, (&WaterAddCmd{Litres: 1.75}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "1.75 / 2.00 L (88%)")

	require.NoError(t, (&WaterLogCmd{Goal: 2.5}).Run(env.Reopen()))
	assert.Contains(t, env.Out.String(), "1.75 / 2.50 L (70%)")
}

func TestWaterLogExplicitZeroIntake(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, (&WaterAddCmd{Litres: 1}).Run(env.Ctx))

	require.NoError(t, (&WaterLogCmd{Intake: litres(0)}).Run(env.Reopen()))
	assert.Contains(t, env.Out.String(), "0.00 / 2.00 L (0%)")
}

func TestWaterLogRejectsBadInput(t *testing.T) {
	env := clitest.New(t)
	assert.ErrorIs(t, (&WaterLogCmd{Goal: 20, Intake: litres(1)}).Run(env.Ctx), validation.ErrInvalid)
	assert.ErrorIs(t, (&WaterLogCmd{Goal: 2, Intake: litres(-1)}).Run(env.Ctx), validation.ErrInvalid)
}

func TestWaterAddAndGoal(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, (&WaterAddCmd{Litres: 0.75}).Run(env.Ctx))
	require.NoError(t, (&WaterGoalCmd{Litres: 1.5}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "0.75 / 1.50 L (50%)")

	assert.ErrorIs(t, (&WaterAddCmd{Litres: 0}).Run(env.Ctx), validation.ErrInvalid)
	assert.ErrorIs(t, (&WaterGoalCmd{Litres: 0}).Run(env.Ctx), validation.ErrInvalid)
}

func TestWaterNotes(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, (&WaterAddCmd{Litres: 1}).Run(env.Ctx))

	require.NoError(t, (&WaterNoteCmd{Date: "2026-05-04", Text: "hot day"}).Run(env.Ctx))
	assert.Error(t, (&WaterNoteCmd{Date: "2026-05-01", Text: "nothing logged"}).Run(env.Ctx))
	assert.ErrorIs(t, (&WaterNoteCmd{Date: "May 4", Text: "x"}).Run(env.Ctx), validation.ErrInvalid)

	a, err := env.Ctx.App()
	require.NoError(t, err)
	rec, ok := a.Records.Today()
	require.True(t, ok)
	assert.Equal(t, "hot day", rec.Feedback)

	require.NoError(t, (&WaterClearNoteCmd{Date: "2026-05-04"}).Run(env.Ctx))
	rec, _ = a.Records.Today()
	assert.Empty(t, rec.Feedback)
}

func TestWaterHistoryEmptyAndLimit(t *testing.T) {
	env := clitest.New(t)
	require.NoError(t, (&WaterHistoryCmd{}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "No water logged yet")

	for i := 0; i < 3; i++ {
		require.NoError(t, (&WaterAddCmd{Litres: 2}).Run(env.Ctx))
		env.Clock.Advance(24 * time.Hour)
	}
	require.NoError(t, (&WaterHistoryCmd{Limit: 2}).Run(env.Reopen()))
	out := env.Out.String()
	assert.Contains(t, out, "2026-05-06")
	assert.Contains(t, out, "2026-05-05")
	assert.NotContains(t, out, "2026-05-04")
}

func TestParseLitres(t *testing.T) {
	v, err := parseLitres(" 1.25 ")
	require.NoError(t, err)
	assert.Equal(t, 1.25, v)

	_, err = parseLitres("lots")
	assert.ErrorIs(t, err, validation.ErrInvalid)
}

package storage

import (
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifeboost/internal/metrics"
	"github.com/julianstephens/lifeboost/internal/models"
	"github.com/julianstephens/lifeboost/internal/testutil"
)

func TestKV_JSONRoundTrip(t *testing.T) {
	kv := NewKV(NewMemoryStore())

	stats := models.UserStats{MeditationCompletions: 2, LastWorkoutDate: "2026-04-01"}
	require.True(t, kv.PutJSON("userStats", stats))

	var got models.UserStats
	require.True(t, kv.GetJSON("userStats", &got))
	assert.Equal(t, stats, got)
}

func TestKV_AbsentKey(t *testing.T) {
	kv := NewKV(NewMemoryStore())
	var got []models.DailyRecord
	assert.False(t, kv.GetJSON("waterHistory", &got))
	assert.Nil(t, got)
}

func TestKV_CorruptValueIsAbsent(t *testing.T) {
	store := testutil.NewFaultyStore()
	store.Raw("waterHistory", "{not json")
	kv := NewKV(store)

	before := promtest.ToFloat64(metrics.StorageFaults.WithLabelValues("decode"))

	history := []models.DailyRecord{{Date: "2026-01-01"}}
	assert.False(t, kv.GetJSON("waterHistory", &history))
	assert.Len(t, history, 1, "target must be left untouched")
	assert.Equal(t, before+1, promtest.ToFloat64(metrics.StorageFaults.WithLabelValues("decode")))
}

func TestKV_FailingStoreDegrades(t *testing.T) {
	store := testutil.NewFaultyStore()
	store.Raw("userName", "Ada")
	store.Fail(true, true, true)
	kv := NewKV(store)

	_, found := kv.GetString("userName")
	assert.False(t, found)
	assert.False(t, kv.PutJSON("userStats", models.UserStats{}))
	assert.False(t, kv.Remove("userName"))
	assert.False(t, kv.Clear("userName", "userStats"))
}

func TestKV_NilProvider(t *testing.T) {
	var kv *KV
	assert.False(t, kv.PutString("k", "v"))
	_, found := kv.GetString("k")
	assert.False(t, found)

	kv = NewKV(nil)
	assert.False(t, kv.Remove("k"))
}

func TestKV_Clear(t *testing.T) {
	store := NewMemoryStore()
	kv := NewKV(store)
	kv.PutString("userName", "Ada")
	kv.PutString("userStats", "{}")
	kv.PutString("hydrationReminder", "{}")

	assert.True(t, kv.Clear("userName", "userStats", "neverSet"))

	_, found := kv.GetString("userName")
	assert.False(t, found)
	_, found = kv.GetString("hydrationReminder")
	assert.True(t, found)
}

func TestKV_Probe(t *testing.T) {
	store := testutil.NewFaultyStore()
	kv := NewKV(store)
	var st models.ReminderState

	assert.Equal(t, Missing, kv.Probe("hydrationReminder", &st))

	store.Raw("hydrationReminder", `{"intervalOrPeriod":60,"active":true}`)
	assert.Equal(t, Found, kv.Probe("hydrationReminder", &st))
	assert.Equal(t, 60, st.Period)

	store.Raw("hydrationReminder", "garbage")
	assert.Equal(t, Unreadable, kv.Probe("hydrationReminder", &st))

	store.Fail(true, false, false)
	assert.Equal(t, Unreadable, kv.Probe("hydrationReminder", &st))
}

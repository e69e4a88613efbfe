// Package clitest builds command contexts over an in-memory store for tests.
package clitest

import (
	"bytes"
	"testing"
	"time"

	"github.com/julianstephens/lifeboost/internal/cli"
	"github.com/julianstephens/lifeboost/internal/config"
	"github.com/julianstephens/lifeboost/internal/storage"
	"github.com/julianstephens/lifeboost/internal/testutil"
)

// Start is the fake clock's initial reading.
var Start = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

type Env struct {
	Ctx      *cli.Context
	Out      *bytes.Buffer
	Clock    *testutil.Clock
	Recorder *testutil.Recorder
	Store    *storage.MemoryStore
}

func New(t *testing.T) *Env {
	t.Helper()
	env := &Env{
		Out:      &bytes.Buffer{},
		Clock:    testutil.NewClock(Start),
		Recorder: &testutil.Recorder{},
		Store:    storage.NewMemoryStore(),
	}
	env.Ctx = env.context()
	return env
}

// Reopen starts a fresh context over the same store, like a second invocation.
func (e *Env) Reopen() *cli.Context {
	e.Out.Reset()
	e.Ctx = e.context()
	return e.Ctx
}

func (e *Env) context() *cli.Context {
	return &cli.Context{
		Config:  config.DefaultConfig(),
		Store:   e.Store,
		Out:     e.Out,
		Clock:   e.Clock,
		Emitter: e.Recorder,
	}
}

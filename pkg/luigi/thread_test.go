package luigi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/goluigi/pkg/luigi/native/fake"
)

// countThreadLocks replaces the OS thread hooks for the duration of the test.
func countThreadLocks(t *testing.T) (locks, unlocks *int) {
	t.Helper()
	var l, u int
	prevLock, prevUnlock := lockThread, unlockThread
	lockThread = func() { l++ }
	unlockThread = func() { u++ }
	t.Cleanup(func() {
		lockThread, unlockThread = prevLock, prevUnlock
	})
	return &l, &u
}

func TestInit_FailureReleasesThread(t *testing.T) {
	locks, unlocks := countThreadLocks(t)
	tk := fake.New()
	require.NoError(t, tk.Initialise())
	env := NewEnvironment(tk)

	assert.PanicsWithValue(t, ErrDoubleInitialization, env.Init)

	assert.Equal(t, 1, *locks)
	assert.Equal(t, 1, *unlocks)
	assert.Equal(t, StateUninitialized, env.State())
}

func TestInit_ThreadHeldUntilLoopReturns(t *testing.T) {
	locks, unlocks := countThreadLocks(t)
	env := NewEnvironment(fake.New())

	env.Init()
	assert.Equal(t, 1, *locks)
	assert.Zero(t, *unlocks)

	assert.PanicsWithValue(t, ErrDoubleInitialization, env.Init)
	assert.Equal(t, 1, *locks, "a rejected second Init takes no lock")

	env.MessageLoop()
	assert.Equal(t, 1, *unlocks)
}

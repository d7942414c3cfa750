package luigi_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/goluigi/internal/infrastructure/ffi"
	"github.com/bnema/goluigi/pkg/luigi"
	"github.com/bnema/goluigi/pkg/luigi/native"
	"github.com/bnema/goluigi/pkg/luigi/native/fake"
	"github.com/bnema/goluigi/pkg/luigi/native/mocks"
)

func TestEnvironment_InitBindsBeforeInitialise(t *testing.T) {
	tk := fake.New()
	env := luigi.NewEnvironment(tk, luigi.WithFont("DejaVu Sans", 13))

	assert.Empty(t, tk.Calls(), "constructing an environment must not touch the toolkit")
	env.Init()

	assert.Equal(t, []string{"Bind", "Initialise", "FontActivate"}, tk.CallNames())
	assert.Equal(t, luigi.StateInitialized, env.State())
	name, size := tk.Font()
	assert.Equal(t, "DejaVu Sans", name)
	assert.Equal(t, 13, size)
}

func TestEnvironment_FontFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	tk := fake.New(fake.FailFont())
	env := luigi.NewEnvironment(tk,
		luigi.WithFont("missing", 12),
		luigi.WithLogger(zerolog.New(&buf)),
	)

	env.Init()

	assert.Equal(t, luigi.StateInitialized, env.State())
	assert.Contains(t, buf.String(), "font unavailable")
}

func TestEnvironment_DoubleInitPanics(t *testing.T) {
	env, _ := newEnv(t)

	assert.PanicsWithValue(t, luigi.ErrDoubleInitialization, env.Init)
}

func TestEnvironment_SecondEnvironmentOnInitialisedToolkitPanics(t *testing.T) {
	_, tk := newEnv(t)
	second := luigi.NewEnvironment(tk)

	assert.PanicsWithValue(t, luigi.ErrDoubleInitialization, second.Init)
}

func TestEnvironment_InitialiseErrorIsWrapped(t *testing.T) {
	tk := mocks.NewMockToolkit(t)
	boom := errors.New("no display")
	tk.EXPECT().Bind(mock.Anything).Once()
	tk.EXPECT().Initialise().Return(boom).Once()
	env := luigi.NewEnvironment(tk)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, boom)
	}()
	env.Init()
}

func TestEnvironment_LoopBeforeInitMakesNoNativeCall(t *testing.T) {
	tk := mocks.NewMockToolkit(t)
	env := luigi.NewEnvironment(tk)

	assert.PanicsWithValue(t, luigi.ErrLoopBeforeInit, func() { env.MessageLoop() })
	tk.AssertNotCalled(t, "MessageLoop")
	tk.AssertNotCalled(t, "Initialise")
}

func TestMessageLoop_WithoutInitPanics(t *testing.T) {
	require.Nil(t, luigi.Default())

	assert.PanicsWithValue(t, luigi.ErrLoopBeforeInit, func() { luigi.MessageLoop() })
}

func TestInit_MissingLibraryReturnsError(t *testing.T) {
	t.Setenv(ffi.LibraryEnv, t.TempDir()+"/nope.so")

	env, err := luigi.Init()

	assert.Nil(t, env)
	assert.ErrorIs(t, err, ffi.ErrLibraryNotFound)
	assert.Nil(t, luigi.Default())
}

func TestEnvironment_MessageLoopReturnsExitCodeAndTerminates(t *testing.T) {
	var env *luigi.Environment
	env, tk := newEnv(t, fake.OnLoop(func(*fake.Toolkit) int {
		assert.Equal(t, luigi.StateRunning, env.State())
		return 7
	}))
	win, panel := newTree(t, env)
	button, err := luigi.NewButton(panel, 0, "ok")
	require.NoError(t, err)
	fired := false
	require.NoError(t, button.OnClick(func() { fired = true }))
	require.NoError(t, win.RegisterShortcut(luigi.Shortcut{Key: 1, Invoke: func() {}}))
	require.Equal(t, 2, env.Slots())

	code := env.MessageLoop()

	assert.Equal(t, 7, code)
	assert.Equal(t, luigi.StateTerminated, env.State())
	assert.Zero(t, env.Slots())
	assert.ErrorIs(t, button.OnClick(func() {}), luigi.ErrTerminated)
	assert.ErrorIs(t, win.Refresh(), luigi.ErrTerminated)
	_, err = luigi.NewWindow(env, "late", 10, 10, 0)
	assert.ErrorIs(t, err, luigi.ErrTerminated)

	// The native side still holds the old context; it must resolve to nothing.
	tk.Click(button.Handle())
	assert.False(t, fired)
}

func TestEnvironment_LoopAfterTerminationPanics(t *testing.T) {
	env, _ := newEnv(t)
	env.MessageLoop()

	assert.PanicsWithValue(t, luigi.ErrTerminated, func() { env.MessageLoop() })
}

func TestEnvironment_ReenteringLoopPanics(t *testing.T) {
	var env *luigi.Environment
	env, _ = newEnv(t, fake.OnLoop(func(*fake.Toolkit) int {
		return env.MessageLoop()
	}))

	assert.PanicsWithValue(t, luigi.ErrLoopReentered, func() { env.MessageLoop() })
	assert.Equal(t, luigi.StateTerminated, env.State())
}

func TestEnvironment_ClickDuringLoop(t *testing.T) {
	var (
		env    *luigi.Environment
		button *luigi.Button
		clicks int
	)
	env, _ = newEnv(t, fake.OnLoop(func(tk *fake.Toolkit) int {
		tk.Click(button.Handle())
		tk.Click(button.Handle())
		return 0
	}))
	_, panel := newTree(t, env)
	button, err := luigi.NewButton(panel, 0, "count")
	require.NoError(t, err)
	require.NoError(t, button.OnClick(func() { clicks++ }))

	env.MessageLoop()

	assert.Equal(t, 2, clicks)
}

func TestEnvironment_UninitialisedRejectsWidgets(t *testing.T) {
	env := luigi.NewEnvironment(fake.New())

	_, err := luigi.NewWindow(env, "x", 1, 1, 0)
	assert.ErrorIs(t, err, luigi.ErrNotInitialized)

	_, err = luigi.NewWindow(nil, "x", 1, 1, 0)
	assert.ErrorIs(t, err, luigi.ErrNotInitialized)

	_, err = env.MeasureStringHeight()
	assert.ErrorIs(t, err, luigi.ErrNotInitialized)
}

func TestEnvironment_DispatchUnknownSlotIsDropped(t *testing.T) {
	env, _ := newEnv(t)

	assert.NotPanics(t, func() { env.DispatchInvoke(native.Context(42)) })
	assert.Empty(t, env.DispatchTableItem(native.Context(42), native.TableItemRequest{}))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", luigi.StateUninitialized.String())
	assert.Equal(t, "running", luigi.StateRunning.String())
	assert.Equal(t, "terminated", luigi.StateTerminated.String())
	assert.Equal(t, "State(9)", luigi.State(9).String())
}

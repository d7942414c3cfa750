package luigi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/bnema/goluigi/internal/callback"
	"github.com/bnema/goluigi/pkg/luigi/native"
)

// State is the lifecycle of an Environment.
type State int32

const (
	StateUninitialized State = iota
	StateInitialized
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Swapped in tests.
var (
	lockThread   = runtime.LockOSThread
	unlockThread = runtime.UnlockOSThread
)

// Option configures an Environment.
type Option func(*Environment)

// WithLogger sets the logger used for lifecycle and callback diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Environment) {
		e.log = logger.With().Str("component", "luigi").Logger()
	}
}

// WithFont activates the named font at the given pixel size during Init.
func WithFont(name string, size int) Option {
	return func(e *Environment) {
		e.fontName = name
		e.fontSize = size
	}
}

// WithLibrary sets the shared library path and extra search directories used by the
// package-level Init. It has no effect on NewEnvironment.
func WithLibrary(path string, searchPaths ...string) Option {
	return func(e *Environment) {
		e.libraryPath = path
		e.searchPaths = searchPaths
	}
}

// Environment is the process-wide toolkit state. It is the token proving that the
// toolkit was initialised: root windows are created from it and the message loop runs
// on it.
//
// An Environment and every wrapper created from it must only be used from the goroutine
// that called Init, which stays locked to its OS thread until MessageLoop returns.
type Environment struct {
	toolkit native.Toolkit
	log     zerolog.Logger
	slots   *callback.Registry
	state   State
	roots   []*node
	// nodes indexes live wrappers by handle for native destroy notices.
	nodes map[native.Handle]*node

	fontName    string
	fontSize    int
	libraryPath string
	searchPaths []string
}

// NewEnvironment wraps a toolkit backend. No native call is made until Init.
func NewEnvironment(toolkit native.Toolkit, opts ...Option) *Environment {
	e := &Environment{
		toolkit: toolkit,
		log:     zerolog.Nop(),
		slots:   callback.NewRegistry(),
		nodes:   map[native.Handle]*node{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State reports the lifecycle state.
func (e *Environment) State() State {
	return e.state
}

// Init sets up the native toolkit. Calling it a second time, or on a toolkit that
// this process already initialised, panics with ErrDoubleInitialization.
func (e *Environment) Init() {
	if e.state != StateUninitialized {
		panic(ErrDoubleInitialization)
	}

	// The lock is held from here until the loop returns. A failed Init gives it
	// back so the caller's goroutine is not left pinned.
	lockThread()
	initialised := false
	defer func() {
		if !initialised {
			unlockThread()
		}
	}()

	e.toolkit.Bind(e)
	if err := e.toolkit.Initialise(); err != nil {
		if errors.Is(err, native.ErrAlreadyInitialised) {
			panic(ErrDoubleInitialization)
		}
		panic(fmt.Errorf("luigi: initialise toolkit: %w", err))
	}
	e.state = StateInitialized
	initialised = true

	if e.fontName != "" {
		if !e.toolkit.FontActivate(e.fontName, e.fontSize) {
			e.log.Warn().Str("font", e.fontName).Int("size", e.fontSize).Msg("font unavailable, keeping toolkit default")
		}
	}
	e.log.Debug().Msg("toolkit initialised")
}

// MessageLoop blocks in the native event loop until the toolkit quits, then
// terminates the environment and returns the native exit code.
//
// It panics with ErrLoopBeforeInit before Init, with ErrLoopReentered when called
// from inside the running loop, and with ErrTerminated once the loop has returned.
func (e *Environment) MessageLoop() int {
	switch e.state {
	case StateUninitialized:
		panic(ErrLoopBeforeInit)
	case StateRunning:
		panic(ErrLoopReentered)
	case StateTerminated:
		panic(ErrTerminated)
	}

	e.state = StateRunning
	e.log.Debug().Int("windows", len(e.roots)).Msg("entering message loop")
	defer e.terminate()

	return e.toolkit.MessageLoop()
}

// terminate runs once the native loop can no longer dispatch. Every slot can be
// released at this point: no trampoline will fire again.
func (e *Environment) terminate() {
	e.state = StateTerminated
	unlockThread()
	released := e.slots.Len()
	e.slots.ReleaseAll()
	e.roots = nil
	clear(e.nodes)
	e.log.Debug().Int("released_slots", released).Msg("message loop returned, environment terminated")
}

// usable reports whether widgets may be created or mutated.
func (e *Environment) usable() error {
	if e == nil {
		return ErrNotInitialized
	}
	switch e.state {
	case StateUninitialized:
		return ErrNotInitialized
	case StateTerminated:
		return ErrTerminated
	}
	return nil
}

// Slots returns the number of live callback slots.
func (e *Environment) Slots() int {
	return e.slots.Len()
}

// DispatchInvoke implements native.Dispatcher.
func (e *Environment) DispatchInvoke(cp native.Context) {
	if !e.slots.Invoke(cp) {
		e.log.Debug().
			Uint64("slot", uint64(cp)).
			Stringer("stored", e.slots.Kind(cp)).
			Msg("dropped invoke for released or mismatched slot")
	}
}

// DispatchTableItem implements native.Dispatcher.
func (e *Environment) DispatchTableItem(cp native.Context, req native.TableItemRequest) string {
	text, ok := e.slots.TableItem(cp, req)
	if !ok {
		e.log.Debug().
			Uint64("slot", uint64(cp)).
			Stringer("stored", e.slots.Kind(cp)).
			Msg("dropped table item request for released or mismatched slot")
	}
	return text
}

// DispatchDestroyed implements native.Dispatcher. Handles the wrappers destroyed
// themselves were already forgotten and are ignored.
func (e *Environment) DispatchDestroyed(h native.Handle) {
	n, ok := e.nodes[h]
	if !ok {
		return
	}
	n.destroyedNatively()
	e.log.Debug().
		Stringer("widget", n.kind).
		Uint64("handle", uint64(h)).
		Msg("toolkit destroyed element subtree")
}

var _ native.Dispatcher = (*Environment)(nil)

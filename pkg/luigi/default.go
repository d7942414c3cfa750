package luigi

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/goluigi/internal/infrastructure/ffi"
)

var (
	processMu  sync.Mutex
	defaultEnv *Environment
)

// Init loads the native library and initialises the toolkit for this process. It must
// be called from the goroutine that will run MessageLoop. A second call panics with
// ErrDoubleInitialization.
func Init(opts ...Option) (*Environment, error) {
	processMu.Lock()
	defer processMu.Unlock()
	if defaultEnv != nil {
		panic(ErrDoubleInitialization)
	}

	// Options are applied twice: once here to learn the library location, once by
	// NewEnvironment.
	staged := &Environment{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(staged)
	}
	toolkit, err := ffi.Load(ffi.Options{
		Path:        staged.libraryPath,
		SearchPaths: staged.searchPaths,
		Logger:      staged.log,
	})
	if err != nil {
		return nil, fmt.Errorf("luigi: load native library: %w", err)
	}

	env := NewEnvironment(toolkit, opts...)
	env.Init()
	defaultEnv = env
	return env, nil
}

// Default returns the environment created by Init, or nil.
func Default() *Environment {
	processMu.Lock()
	defer processMu.Unlock()
	return defaultEnv
}

// MessageLoop runs the message loop of the environment created by Init. Without a
// prior Init it panics with ErrLoopBeforeInit and makes no native call.
func MessageLoop() int {
	env := Default()
	if env == nil {
		panic(ErrLoopBeforeInit)
	}
	return env.MessageLoop()
}

// Package ffi is the purego backend of the Luigi toolkit ABI. It loads the shared
// library built from native/csrc/luigi_shim.c at runtime, so no cgo toolchain is needed.
package ffi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/goluigi/internal/logging"
)

// LibraryEnv overrides every other library location when set.
const LibraryEnv = "LUIGI_LIBRARY"

// ErrLibraryNotFound is returned when no candidate path could be opened.
var ErrLibraryNotFound = errors.New("ffi: luigi shared library not found")

// Options controls library discovery.
type Options struct {
	// Path is an explicit library path. It wins over SearchPaths but not over
	// LUIGI_LIBRARY.
	Path string
	// SearchPaths are extra directories probed for LibraryName.
	SearchPaths []string
	Logger      zerolog.Logger
}

var (
	loadMu sync.Mutex
	loaded *Toolkit
)

// LibraryName returns the platform file name of the shared library.
func LibraryName() string {
	if runtime.GOOS == "windows" {
		return "luigi.dll"
	}
	return "libluigi.so"
}

// Candidates lists the paths Load tries, in order.
func Candidates(opts Options) []string {
	if path := os.Getenv(LibraryEnv); path != "" {
		return []string{path}
	}
	name := LibraryName()
	var paths []string
	if opts.Path != "" {
		paths = append(paths, opts.Path)
	}
	for _, dir := range opts.SearchPaths {
		paths = append(paths, filepath.Join(dir, name))
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		paths = append(paths,
			filepath.Join(execDir, name),
			filepath.Join(execDir, "..", "lib", name),
		)
	}
	// Bare name last: let the system loader search its own paths.
	return append(paths, name)
}

// releaseLibrary unloads a library whose symbols could not all be bound.
var releaseLibrary = closeLibrary

// Load opens the shared library and binds every symbol. The library is loaded once
// per process; later calls return the same Toolkit. A library that opens but lacks
// a symbol is unloaded again before the error is returned.
func Load(opts Options) (*Toolkit, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if loaded != nil {
		return loaded, nil
	}

	log := opts.Logger.With().Str(logging.ComponentKey, "ffi").Logger()
	var errs []error
	for _, path := range Candidates(opts) {
		lib, err := openLibrary(path)
		if err != nil {
			log.Debug().Str("path", path).Err(err).Msg("failed to load luigi library")
			errs = append(errs, err)
			continue
		}
		if err := bindSymbols(lib); err != nil {
			if cerr := releaseLibrary(lib); cerr != nil {
				log.Warn().Str("path", path).Err(cerr).Msg("failed to unload incomplete luigi library")
			}
			return nil, fmt.Errorf("ffi: bind %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("luigi library loaded")
		loaded = &Toolkit{path: path}
		return loaded, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(errs...))
}

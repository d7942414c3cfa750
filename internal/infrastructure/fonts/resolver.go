// Package fonts turns the configured font name into something the toolkit can load.
// Luigi's FreeType backend opens font files by path, so family names are resolved
// through fontconfig's fc-match.
package fonts

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/bnema/goluigi/internal/logging"
)

// ErrNotFound is returned when fontconfig has no match for a family name.
var ErrNotFound = errors.New("fonts: no matching font file")

// matchFunc runs fc-match for pattern and returns its raw output.
type matchFunc func(ctx context.Context, pattern string) ([]byte, error)

// Resolver maps font names to file paths, caching fc-match answers.
type Resolver struct {
	mu    sync.Mutex
	cache map[string]string
	match matchFunc
}

// NewResolver creates a resolver backed by fc-match.
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[string]string), match: fcMatch}
}

// IsAvailable reports whether fc-match is on PATH.
func (*Resolver) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("fc-match")
	return err == nil
}

// Resolve returns a loadable font path for name. An empty name stays empty (the
// toolkit's built-in font); an existing file is returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}

	log := logging.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if path, ok := r.cache[name]; ok {
		return path, nil
	}

	out, err := r.match(ctx, name)
	if err != nil {
		log.Debug().Str("font", name).Err(err).Msg("fc-match failed")
		return "", err
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", ErrNotFound
	}

	r.cache[name] = path
	log.Debug().Str("font", name).Str("path", path).Msg("resolved font family")
	return path, nil
}

func fcMatch(ctx context.Context, pattern string) ([]byte, error) {
	return exec.CommandContext(ctx, "fc-match", "--format=%{file}", pattern).Output()
}

// Package demo holds the example applications shipped with the luigi CLI. Each one
// builds its widget tree on an initialised environment and returns; the caller runs
// the message loop.
package demo

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/goluigi/pkg/luigi"
)

// Options carries the settings the demos take from configuration.
type Options struct {
	Width  int
	Height int
}

// Builder builds one demo on env.
type Builder func(ctx context.Context, env *luigi.Environment, opts Options) error

var builders = map[string]Builder{
	"counter": func(ctx context.Context, env *luigi.Environment, _ Options) error {
		_, err := NewCounter(ctx, env)
		return err
	},
	"sample": func(ctx context.Context, env *luigi.Environment, opts Options) error {
		_, err := NewSample(ctx, env, opts)
		return err
	},
	"gallery": func(ctx context.Context, env *luigi.Environment, opts Options) error {
		_, err := NewGallery(ctx, env, opts)
		return err
	},
}

// Names lists the available demos.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build builds the named demo.
func Build(ctx context.Context, name string, env *luigi.Environment, opts Options) error {
	b, ok := builders[name]
	if !ok {
		return fmt.Errorf("unknown demo %q", name)
	}
	return b(ctx, env, opts)
}

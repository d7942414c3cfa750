package luigi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/goluigi/pkg/luigi"
	"github.com/bnema/goluigi/pkg/luigi/native/fake"
)

// newEnv returns an initialised environment over a fresh fake toolkit.
func newEnv(t *testing.T, opts ...fake.Option) (*luigi.Environment, *fake.Toolkit) {
	t.Helper()
	tk := fake.New(opts...)
	env := luigi.NewEnvironment(tk)
	env.Init()
	return env, tk
}

// newTree builds window > panel and returns both.
func newTree(t *testing.T, env *luigi.Environment) (*luigi.Window, *luigi.Panel) {
	t.Helper()
	win, err := luigi.NewWindow(env, "test", 640, 480, 0)
	require.NoError(t, err)
	panel, err := luigi.NewPanel(win, luigi.PanelGray)
	require.NoError(t, err)
	return win, panel
}

package fonts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

func stubResolver(out string, err error) (*Resolver, *int) {
	calls := 0
	r := NewResolver()
	r.match = func(context.Context, string) ([]byte, error) {
		calls++
		return []byte(out), err
	}
	return r, &calls
}

func TestResolve_EmptyName(t *testing.T) {
	r, calls := stubResolver("", nil)

	path, err := r.Resolve(testContext(), "  ")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Zero(t, *calls)
}

func TestResolve_ExistingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "Font.ttf")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	r, calls := stubResolver("", nil)

	path, err := r.Resolve(testContext(), file)
	require.NoError(t, err)
	assert.Equal(t, file, path)
	assert.Zero(t, *calls)
}

func TestResolve_FamilyIsCached(t *testing.T) {
	r, calls := stubResolver("/usr/share/fonts/DejaVuSans.ttf\n", nil)
	ctx := testContext()

	first, err := r.Resolve(ctx, "DejaVu Sans")
	require.NoError(t, err)
	second, err := r.Resolve(ctx, "DejaVu Sans")
	require.NoError(t, err)

	assert.Equal(t, "/usr/share/fonts/DejaVuSans.ttf", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, *calls)
}

func TestResolve_Errors(t *testing.T) {
	boom := errors.New("exec: fc-match not found")

	r, _ := stubResolver("", boom)
	_, err := r.Resolve(testContext(), "Sans")
	assert.ErrorIs(t, err, boom)

	r, _ = stubResolver("  ", nil)
	_, err = r.Resolve(testContext(), "Sans")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_System(t *testing.T) {
	r := NewResolver()
	if !r.IsAvailable(testContext()) {
		t.Skip("fc-match not available on this system")
	}

	path, err := r.Resolve(testContext(), "sans-serif")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	t.Logf("sans-serif resolves to %s", path)
}

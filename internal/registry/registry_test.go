package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/qianyesu/fishpackgo/internal/registry"
)

// echo returns its first argument, or null when called with none.
func echo(_ context.Context, args ...cty.Value) (cty.Value, error) {
	if len(args) == 0 {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	return args[0], nil
}

func TestRegisterModule_Lookup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New()

	// --- Act ---
	handle, err := reg.RegisterModule("echo", map[string]registry.Callable{"echo": echo})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "echo", handle.Name())

	looked, ok := reg.Module("echo")
	require.True(t, ok)
	require.Same(t, handle, looked, "lookup must return the registered handle itself")
}

func TestRegisterModule_DuplicateName_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New()
	first, err := reg.RegisterModule("echo", map[string]registry.Callable{"echo": echo})
	require.NoError(t, err)

	// --- Act ---
	_, err = reg.RegisterModule("echo", nil)

	// --- Assert ---
	require.ErrorIs(t, err, registry.ErrAlreadyRegistered)

	// The original registration must be untouched.
	looked, ok := reg.Module("echo")
	require.True(t, ok)
	require.Same(t, first, looked)
}

func TestModule_UnknownName_NotFound(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	_, ok := reg.Module("missing")
	require.False(t, ok)
}

func TestModuleNames_Sorted(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := reg.RegisterModule(name, nil)
		require.NoError(t, err)
	}

	// --- Act / Assert ---
	require.Equal(t, []string{"alpha", "mid", "zeta"}, reg.ModuleNames())
}

func TestHandle_Call_DispatchesByName(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New()
	handle, err := reg.RegisterModule("echo", map[string]registry.Callable{"echo": echo})
	require.NoError(t, err)

	// --- Act ---
	result, callErr := handle.Call(context.Background(), "echo", cty.StringVal("hello"))

	// --- Assert ---
	require.NoError(t, callErr)
	require.Equal(t, cty.StringVal("hello"), result)
}

func TestHandle_Call_UnknownCallable_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New()
	handle, err := reg.RegisterModule("echo", map[string]registry.Callable{"echo": echo})
	require.NoError(t, err)

	// --- Act ---
	_, callErr := handle.Call(context.Background(), "nope")

	// --- Assert ---
	require.Error(t, callErr)
	require.Contains(t, callErr.Error(), `has no callable "nope"`)
}

func TestHandle_Lookup(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	handle, err := reg.RegisterModule("echo", map[string]registry.Callable{"echo": echo})
	require.NoError(t, err)

	fn, ok := handle.Lookup("echo")
	require.True(t, ok)
	require.NotNil(t, fn)

	_, ok = handle.Lookup("nope")
	require.False(t, ok)
}

package xmlkind

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nixon/githubv2/errors"
)

func TestNewRegistry_SeedsBuiltinKinds(t *testing.T) {
	reg := NewRegistry()

	for _, name := range []string{"string", "integer", "float", "datetime", "boolean", "array"} {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, "expected built-in kind %q", name)
	}
}

func TestRegistry_RegisterReplacesEarlierBinding(t *testing.T) {
	reg := NewRegistry()

	first := ScalarKind(func(string) (any, error) { return "first", nil })
	second := ScalarKind(func(string) (any, error) { return "second", nil })

	reg.Register("custom", first)
	reg.Register("custom", second)

	v, err := Decode(reg, mustElement(t, `<x type="custom">ignored</x>`))
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestRegistry_Unregister(t *testing.T) {
	reg := NewRegistry()
	reg.Unregister("integer")

	_, ok := reg.Lookup("integer")
	assert.False(t, ok)

	// Unregistering an absent name is a no-op.
	reg.Unregister("integer")
}

func TestRegistry_Known_Sorted(t *testing.T) {
	reg := NewRegistry()
	known := reg.Known()

	assert.Equal(t, []string{"array", "boolean", "datetime", "float", "integer", "string"}, known)
}

func TestRegistry_Override_Restores(t *testing.T) {
	reg := NewRegistry()
	before := reg.Known()

	restore := reg.Override("integer", StringKind)
	v, err := Decode(reg, mustElement(t, `<x type="integer">42</x>`))
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	restore()
	assert.Equal(t, before, reg.Known())

	v, err = Decode(reg, mustElement(t, `<x type="integer">42</x>`))
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestRegistry_Override_NewBindingRemovedOnRestore(t *testing.T) {
	reg := NewRegistry()
	before := reg.Known()

	restore := reg.Override("custom", StringKind)
	_, ok := reg.Lookup("custom")
	assert.True(t, ok)

	restore()
	_, ok = reg.Lookup("custom")
	assert.False(t, ok)
	assert.Equal(t, before, reg.Known())
}

func TestRegistry_Override_NilRemovesForDuration(t *testing.T) {
	reg := NewRegistry()
	before := reg.Known()

	restore := reg.Override("integer", nil)
	_, ok := reg.Lookup("integer")
	assert.False(t, ok)

	restore()
	assert.Equal(t, before, reg.Known())
}

func TestRegistry_Override_RestoredAfterDecodeFailure(t *testing.T) {
	reg := NewRegistry()
	before := reg.Known()

	err := func() error {
		restore := reg.Override("integer", StringKind)
		defer restore()

		// Unresolvable element: decoding fails mid-override.
		_, err := Decode(reg, mustElement(t, `<mystery>?</mystery>`))
		return err
	}()

	require.Error(t, err)
	assert.Equal(t, errors.CodeDecodeFailed, errors.GetCode(err))
	assert.Equal(t, before, reg.Known())
}

func mustElement(t *testing.T, src string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(src))
	root := doc.Root()
	require.NotNil(t, root)
	return root
}

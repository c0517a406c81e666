package arr_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore-utils/arr"
)

type buffer struct{ strings.Builder }

func (b *buffer) Reset() {
	b.Builder.Reset()
}

func (b *buffer) Append(parts ...string) {
	b.WriteString(strings.Join(parts, ""))
}

func (b *buffer) Label(prefix string) int {
	n, _ := b.WriteString(prefix)
	return n
}

func TestInvokeMethod(t *testing.T) {
	items := []*counter{{1}, {5}}
	got, err := arr.InvokeMethod(items, "Add", 3)
	require.NoError(t, err)
	assert.Same(t, items[0], got[0])
	assert.Equal(t, 4, items[0].n)
	assert.Equal(t, 8, items[1].n)
}

func TestInvokeMethodNoArgs(t *testing.T) {
	b := &buffer{}
	b.WriteString("stale")
	_, err := arr.InvokeMethod([]*buffer{b}, "Reset")
	require.NoError(t, err)
	assert.Empty(t, b.String())
}

func TestInvokeMethodVariadic(t *testing.T) {
	b := &buffer{}
	_, err := arr.InvokeMethod([]*buffer{b}, "Append", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "abc", b.String())

	_, err = arr.InvokeMethod([]*buffer{b}, "Append")
	require.NoError(t, err)
}

func TestInvokeMethodInterfaceElements(t *testing.T) {
	items := []fmt.Stringer{&buffer{}, &buffer{}}
	_, err := arr.InvokeMethod(items, "Label", "x")
	require.NoError(t, err)
	assert.Equal(t, "x", items[1].String())
}

func TestInvokeMethodNotFound(t *testing.T) {
	_, err := arr.InvokeMethod([]*counter{{1}}, "Missing")
	require.ErrorIs(t, err, arr.ErrMethodNotFound)

	// Add has a pointer receiver and is not in the method set of counter.
	_, err = arr.InvokeMethod([]counter{{1}}, "Add", 1)
	require.ErrorIs(t, err, arr.ErrMethodNotFound)

	_, err = arr.InvokeMethod([]any{nil}, "Add", 1)
	require.ErrorIs(t, err, arr.ErrMethodNotFound)
}

func TestInvokeMethodBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{"too few", nil},
		{"too many", []any{1, 2}},
		{"wrong type", []any{"one"}},
		{"nil for int", []any{nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &counter{}
			_, err := arr.InvokeMethod([]*counter{c}, "Add", tt.args...)
			require.ErrorIs(t, err, arr.ErrBadArguments)
			assert.Zero(t, c.n)
		})
	}
}

func TestInvokeMethodStopsAtFirstError(t *testing.T) {
	first := &counter{}
	items := []any{first, "no methods here", &counter{}}
	_, err := arr.InvokeMethod(items, "Add", 1)
	require.ErrorIs(t, err, arr.ErrMethodNotFound)
	assert.Equal(t, 1, first.n)
	assert.Zero(t, items[2].(*counter).n)
}

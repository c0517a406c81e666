package collections

import "strconv"

// Key identifies an element of a [Collection]: an index for sequences, a
// name for mappings.
type Key struct {
	index int
	name  string
	named bool
}

// IndexKey returns the key of the i-th element of a sequence.
func IndexKey(i int) Key { return Key{index: i} }

// NameKey returns the key of a mapping entry.
func NameKey(name string) Key { return Key{name: name, named: true} }

// Index returns the position and true for sequence keys.
func (k Key) Index() (int, bool) { return k.index, !k.named }

// Name returns the entry name and true for mapping keys.
func (k Key) Name() (string, bool) { return k.name, k.named }

// String returns the name, or the decimal index.
func (k Key) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

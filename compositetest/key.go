package compositetest

import (
	"fmt"
	"testing"

	composite "github.com/iov-one/composite"
)

// NewKey returns a key built from given components in order. It fails the
// test if the key cannot be created.
func NewKey(t testing.TB, components ...composite.ComponentKey) *composite.Key {
	t.Helper()
	ctx := composite.NewContext()
	for i, c := range components {
		if err := ctx.Push(c); err != nil {
			t.Fatalf("cannot push component %d: %s", i, err)
		}
	}
	key, err := ctx.Finalize()
	if err != nil {
		t.Fatalf("cannot finalize key: %s", err)
	}
	return key
}

// Components returns n fake components with distinct secrets.
func Components(n int) []composite.ComponentKey {
	cs := make([]composite.ComponentKey, n)
	for i := range cs {
		cs[i] = NewComponent(fmt.Sprintf("secret-%d", i))
	}
	return cs
}

// Digest returns a fixed 32 bytes digest.
func Digest() []byte {
	d := make([]byte, 32)
	for i := range d {
		d[i] = byte(i)
	}
	return d
}

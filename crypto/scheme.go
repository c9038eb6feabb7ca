package crypto

import (
	"crypto/elliptic"
	"sync"

	"github.com/google/btree"
	composite "github.com/iov-one/composite"
	"github.com/iov-one/composite/errors"
)

// GenerateFunc creates a fresh component key.
type GenerateFunc func() (composite.ComponentKey, error)

// scheme is a registry entry ordered by name.
type scheme struct {
	name     string
	generate GenerateFunc
}

var _ btree.Item = scheme{}

func (s scheme) Less(than btree.Item) bool {
	return s.name < than.(scheme).name
}

var registry = struct {
	sync.RWMutex
	tree *btree.BTree
}{
	tree: btree.New(2),
}

// Register makes a component scheme available under given name.
//
// Registration should be done during the program initialization phase.
// Registering a name twice results in panic.
func Register(name string, fn GenerateFunc) {
	if name == "" || fn == nil {
		panic(errors.ErrParamNull.New("scheme name and generator are required"))
	}
	registry.Lock()
	defer registry.Unlock()
	if registry.tree.Has(scheme{name: name}) {
		panic(errors.ErrDuplicate.Newf("scheme %q already registered", name))
	}
	registry.tree.ReplaceOrInsert(scheme{name: name, generate: fn})
}

// Generate creates a fresh component key of the named scheme.
func Generate(name string) (composite.ComponentKey, error) {
	registry.RLock()
	item := registry.tree.Get(scheme{name: name})
	registry.RUnlock()
	if item == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "scheme %q", name)
	}
	return item.(scheme).generate()
}

// Has returns true if a scheme with given name is registered.
func Has(name string) bool {
	registry.RLock()
	defer registry.RUnlock()
	return registry.tree.Has(scheme{name: name})
}

// Schemes returns the names of all registered schemes in lexical order.
func Schemes() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, registry.tree.Len())
	registry.tree.Ascend(func(i btree.Item) bool {
		names = append(names, i.(scheme).name)
		return true
	})
	return names
}

func init() {
	Register(Ed25519Name, func() (composite.ComponentKey, error) {
		return asComponent(GenerateEd25519())
	})
	Register(P256Name, func() (composite.ComponentKey, error) {
		return asComponent(GenerateECDSA(elliptic.P256()))
	})
	Register(P384Name, func() (composite.ComponentKey, error) {
		return asComponent(GenerateECDSA(elliptic.P384()))
	})
	Register(Secp256k1Name, func() (composite.ComponentKey, error) {
		return asComponent(GenerateSecp256k1())
	})
	for _, bits := range []int{2048, 3072} {
		Register(RSAName(bits), func() (composite.ComponentKey, error) {
			return asComponent(GenerateRSA(bits))
		})
	}
	for name := range circlSchemes {
		Register(name, func() (composite.ComponentKey, error) {
			return asComponent(GenerateCircl(name))
		})
	}
}

// asComponent drops the concrete type so that a failed generation never
// returns a typed nil component.
func asComponent[K composite.ComponentKey](k K, err error) (composite.ComponentKey, error) {
	if err != nil {
		return nil, err
	}
	return k, nil
}

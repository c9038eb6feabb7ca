package composite

import (
	"sync"

	"github.com/iov-one/composite/errors"
	"github.com/opencontainers/go-digest"
)

// Context accumulates component keys and an optional digest algorithm before
// they are finalized into a Key.
//
// All methods are safe for concurrent use, but the order in which concurrent
// callers mutate the same context is not defined. Owners building a key
// from several goroutines must serialize their calls.
type Context struct {
	mu         sync.Mutex
	digest     digest.Algorithm
	components []ComponentKey
}

// NewContext returns an empty context with no digest algorithm set.
func NewContext() *Context {
	return &Context{}
}

// NewContextWithDigest returns an empty context using given digest
// algorithm. The algorithm is stored only, the composite operations never
// hash on their own.
func NewContextWithDigest(alg digest.Algorithm) *Context {
	return &Context{digest: alg}
}

// SetDigest sets the digest algorithm.
func (c *Context) SetDigest(alg digest.Algorithm) error {
	if alg == "" {
		return errors.ErrParamNull.New("digest algorithm")
	}
	c.mu.Lock()
	c.digest = alg
	c.mu.Unlock()
	return nil
}

// Digest returns the digest algorithm, or an empty value if not set.
func (c *Context) Digest() digest.Algorithm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.digest
}

// Len returns the number of accumulated components.
func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.components)
}

// Components returns a snapshot of the accumulated components.
func (c *Context) Components() []ComponentKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.components) == 0 {
		return nil
	}
	cp := make([]ComponentKey, len(c.components))
	copy(cp, c.components)
	return cp
}

// Push appends a component.
func (c *Context) Push(k ComponentKey) error {
	if isNilComponent(k) {
		return errors.ErrParamNull.New("component key")
	}
	c.mu.Lock()
	c.components = append(c.components, k)
	c.mu.Unlock()
	return nil
}

// Add inserts a component at given position, shifting the following
// components. Position equal to the current length appends.
func (c *Context) Add(k ComponentKey, id int) error {
	if isNilComponent(k) {
		return errors.ErrParamNull.New("component key")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if id < 0 || id > len(c.components) {
		return errors.ErrIndexOutOfRange.Newf("position %d, %d components", id, len(c.components))
	}
	c.components = append(c.components, nil)
	copy(c.components[id+1:], c.components[id:])
	c.components[id] = k
	return nil
}

// Remove deletes the component at given position.
//
// The first component cannot be removed individually: id must be greater
// than zero and lower than the number of components. Use Clear to drop all
// components.
func (c *Context) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkRemovable(id); err != nil {
		return err
	}
	copy(c.components[id:], c.components[id+1:])
	c.components[len(c.components)-1] = nil
	c.components = c.components[:len(c.components)-1]
	return nil
}

// Pop removes and returns the last component. Same as with Remove, the
// first component cannot be popped, so at least two components must be
// present.
func (c *Context) Pop() (ComponentKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pop(len(c.components) - 1)
}

// popChecked removes the last component if id passes the same check as the
// Remove argument.
func (c *Context) popChecked(id int) (ComponentKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pop(id)
}

// pop removes the last component once id was checked. Must be called with
// the lock held.
func (c *Context) pop(id int) (ComponentKey, error) {
	if err := c.checkRemovable(id); err != nil {
		return nil, err
	}
	last := len(c.components) - 1
	k := c.components[last]
	c.components[last] = nil
	c.components = c.components[:last]
	return k, nil
}

func (c *Context) checkRemovable(id int) error {
	if id <= 0 || id >= len(c.components) {
		return errors.ErrIndexOutOfRange.Newf("component %d does not exist or cannot be removed (%d components)", id, len(c.components))
	}
	return nil
}

// Clear drops all components. The digest algorithm is kept.
func (c *Context) Clear() {
	c.mu.Lock()
	c.components = nil
	c.mu.Unlock()
}

// Finalize moves all accumulated components into a new Key. The context is
// left empty and can be used to build another key. The digest algorithm is
// kept.
func (c *Context) Finalize() (*Key, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.components) == 0 {
		return nil, errors.ErrEmptyComponentSet.New("finalize")
	}
	key := &Key{components: c.components}
	c.components = nil
	return key, nil
}

package compositetest

import (
	"crypto/hmac"
	"crypto/sha256"
	"sync/atomic"

	composite "github.com/iov-one/composite"
)

// Component is a deterministic ComponentKey implementation for tests. It
// "signs" by computing HMAC-SHA256 of the digest with Secret, so signatures
// are reproducible and cheap.
//
// Zero value attributes are replaced with defaults: 32 bytes signatures, 256
// bits key and 128 bits of security.
type Component struct {
	// Name is returned by Algorithm. Defaults to "hmac".
	Name   string
	Secret []byte

	// SigSize overrides the declared maximum signature size. Signatures are
	// truncated or zero padded to SigSize bytes.
	SigSize  int
	KeyBits  int
	Security int

	// SignErr is returned by every Sign call if set.
	SignErr error
	// Reject forces Verify to always return false.
	Reject bool

	signCall   int64
	verifyCall int64
}

var _ composite.PublicKeyer = (*Component)(nil)

// NewComponent returns a component using given secret and default
// attributes.
func NewComponent(secret string) *Component {
	return &Component{Secret: []byte(secret)}
}

func (c *Component) Sign(digest []byte) ([]byte, error) {
	atomic.AddInt64(&c.signCall, 1)
	if c.SignErr != nil {
		return nil, c.SignErr
	}
	return c.mac(digest), nil
}

func (c *Component) Verify(digest, sig []byte) bool {
	atomic.AddInt64(&c.verifyCall, 1)
	if c.Reject {
		return false
	}
	return hmac.Equal(c.mac(digest), sig)
}

func (c *Component) mac(digest []byte) []byte {
	h := hmac.New(sha256.New, c.Secret)
	h.Write(digest)
	sum := h.Sum(nil)
	size := c.MaxSignatureSize()
	if size <= len(sum) {
		return sum[:size]
	}
	out := make([]byte, size)
	copy(out, sum)
	return out
}

func (c *Component) MaxSignatureSize() int {
	if c.SigSize > 0 {
		return c.SigSize
	}
	return sha256.Size
}

func (c *Component) Bits() int {
	if c.KeyBits > 0 {
		return c.KeyBits
	}
	return 256
}

func (c *Component) SecurityBits() int {
	if c.Security > 0 {
		return c.Security
	}
	return 128
}

func (c *Component) Algorithm() string {
	if c.Name != "" {
		return c.Name
	}
	return "hmac"
}

// PublicKeyBytes returns the SHA-256 of the secret.
func (c *Component) PublicKeyBytes() []byte {
	sum := sha256.Sum256(c.Secret)
	return sum[:]
}

// PublicComponent returns a copy of this component. A symmetric fake has no
// public half, the copy only counts its calls separately.
func (c *Component) PublicComponent() composite.ComponentKey {
	return &Component{
		Name:     c.Name,
		Secret:   c.Secret,
		SigSize:  c.SigSize,
		KeyBits:  c.KeyBits,
		Security: c.Security,
		Reject:   c.Reject,
	}
}

// SignCallCount returns how many times Sign was called.
func (c *Component) SignCallCount() int {
	return int(atomic.LoadInt64(&c.signCall))
}

// VerifyCallCount returns how many times Verify was called.
func (c *Component) VerifyCallCount() int {
	return int(atomic.LoadInt64(&c.verifyCall))
}

// PanicComponent panics on every operation.
type PanicComponent struct {
	Component
}

func (*PanicComponent) Sign([]byte) ([]byte, error) {
	panic("sign not available")
}

func (*PanicComponent) Verify([]byte, []byte) bool {
	panic("verify not available")
}

package composite

import (
	"crypto/sha256"
	"reflect"

	"github.com/iov-one/composite/errors"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// ComponentKey is a single asymmetric keypair participating in a composite
// key. Implementations must be safe for concurrent Sign and Verify calls.
//
// Digest is always an already hashed message representative. Component keys
// must not hash it again unless their algorithm requires it.
type ComponentKey interface {
	// Sign returns the signature of given digest.
	Sign(digest []byte) ([]byte, error)
	// Verify returns true if sig is a valid signature of digest.
	Verify(digest, sig []byte) bool
	// MaxSignatureSize returns the maximum length of a signature
	// produced by this key.
	MaxSignatureSize() int
	// Bits returns the size of the key in bits.
	Bits() int
	// SecurityBits returns the estimated strength of the key in bits.
	SecurityBits() int
}

// Named is implemented by component keys that can tell the name of their
// algorithm.
type Named interface {
	Algorithm() string
}

// PublicKeyer is implemented by component keys that can expose their public
// half, both as a verification only component and in a binary form.
type PublicKeyer interface {
	Named
	// PublicKeyBytes returns the binary representation of the public key.
	PublicKeyBytes() []byte
	// PublicComponent returns a component that can only verify.
	PublicComponent() ComponentKey
}

// Key is an ordered, immutable list of component keys used as a single
// logical keypair. Component i of a key always corresponds to signature i of
// a composite signature.
//
// A Key can only be created by finalizing a Context.
type Key struct {
	components []ComponentKey
}

// Len returns the number of components.
func (k *Key) Len() int {
	if k == nil {
		return 0
	}
	return len(k.components)
}

// Component returns the component at given index or nil if there is no such
// component.
func (k *Key) Component(i int) ComponentKey {
	if i < 0 || i >= k.Len() {
		return nil
	}
	return k.components[i]
}

// Components returns a copy of the component list.
func (k *Key) Components() []ComponentKey {
	if k.Len() == 0 {
		return nil
	}
	cp := make([]ComponentKey, len(k.components))
	copy(cp, k.components)
	return cp
}

// Size returns the sum of the maximum signature sizes of all components.
// A key without components is not well formed and an error is returned.
func (k *Key) Size() (int, error) {
	if k.Len() == 0 {
		return 0, errors.ErrEmptyComponentSet.New("key size")
	}
	var total int
	for _, c := range k.components {
		total += c.MaxSignatureSize()
	}
	return total, nil
}

// Bits returns the sum of the components key sizes. It is zero for a key
// without components.
func (k *Key) Bits() int {
	var total int
	for i := 0; i < k.Len(); i++ {
		total += k.components[i].Bits()
	}
	return total
}

// SecurityBits returns the security strength of the weakest component. It is
// zero for a key without components.
func (k *Key) SecurityBits() int {
	if k.Len() == 0 {
		return 0
	}
	weakest := k.components[0].SecurityBits()
	for _, c := range k.components[1:] {
		if s := c.SecurityBits(); s < weakest {
			weakest = s
		}
	}
	return weakest
}

// Verify returns true if sig is a valid composite signature of digest made
// with this key, using the default verifier.
func (k *Key) Verify(digest, sig []byte) bool {
	return NewVerifier().Verify(k, digest, sig) == nil
}

// Public returns a verification only copy of this key. Every component must
// implement PublicKeyer.
func (k *Key) Public() (*Key, error) {
	if k.Len() == 0 {
		return nil, errors.ErrEmptyComponentSet.New("public key")
	}
	pub := make([]ComponentKey, len(k.components))
	for i, c := range k.components {
		p, ok := c.(PublicKeyer)
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnsupported, "component %d (%T) has no public form", i, c)
		}
		pub[i] = p.PublicComponent()
	}
	return &Key{components: pub}, nil
}

// Fingerprint returns the SHA-256 digest of
//
//	SEQUENCE OF SEQUENCE { algorithm UTF8String, publicKey OCTET STRING }
//
// built from all components in order. Every component must implement
// PublicKeyer.
func (k *Key) Fingerprint() ([]byte, error) {
	if k.Len() == 0 {
		return nil, errors.ErrEmptyComponentSet.New("fingerprint")
	}
	var b cryptobyte.Builder
	var err error
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for i, c := range k.components {
			p, ok := c.(PublicKeyer)
			if !ok {
				err = errors.Wrapf(errors.ErrUnsupported, "component %d (%T) has no public form", i, c)
				return
			}
			b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1(asn1.UTF8String, func(b *cryptobyte.Builder) {
					b.AddBytes([]byte(p.Algorithm()))
				})
				b.AddASN1OctetString(p.PublicKeyBytes())
			})
		}
	})
	if err != nil {
		return nil, err
	}
	raw, berr := b.Bytes()
	if berr != nil {
		return nil, errors.Wrap(errors.ErrEncoding, berr.Error())
	}
	sum := sha256.Sum256(raw)
	return sum[:], nil
}

// isNilComponent returns true if given component is nil or a typed nil
// pointer.
func isNilComponent(c ComponentKey) bool {
	if c == nil {
		return true
	}
	if val := reflect.ValueOf(c); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}

package crypto

import (
	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"
	composite "github.com/iov-one/composite"
	"github.com/iov-one/composite/errors"
)

// Scheme names of components backed by circl.
const (
	Ed448Name   = "ed448"
	MLDSA44Name = "mldsa44"
	MLDSA65Name = "mldsa65"
	MLDSA87Name = "mldsa87"
)

// circlSchemes maps a component scheme name to the circl scheme name and the
// claimed security strength.
var circlSchemes = map[string]struct {
	scheme   string
	security int
}{
	Ed448Name:   {scheme: "Ed448", security: 224},
	MLDSA44Name: {scheme: "ML-DSA-44", security: 128},
	MLDSA65Name: {scheme: "ML-DSA-65", security: 192},
	MLDSA87Name: {scheme: "ML-DSA-87", security: 256},
}

// CirclKey is a component using one of the circl signature schemes:
// Ed448 or ML-DSA at any of the standard security levels. The digest is
// signed as the message, with no context string.
type CirclKey struct {
	name     string
	security int
	scheme   sign.Scheme
	priv     sign.PrivateKey
	pub      sign.PublicKey
}

var _ composite.PublicKeyer = (*CirclKey)(nil)

func circlScheme(name string) (sign.Scheme, int, error) {
	desc, ok := circlSchemes[name]
	if !ok {
		return nil, 0, errors.Wrapf(errors.ErrNotFound, "scheme %q", name)
	}
	s := schemes.ByName(desc.scheme)
	if s == nil {
		return nil, 0, errors.Wrapf(errors.ErrUnsupported, "scheme %q not available", desc.scheme)
	}
	return s, desc.security, nil
}

// GenerateCircl returns a random new key of the named scheme.
func GenerateCircl(name string) (*CirclKey, error) {
	s, security, err := circlScheme(name)
	if err != nil {
		return nil, err
	}
	pub, priv, err := s.GenerateKey()
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", name)
	}
	return &CirclKey{name: name, security: security, scheme: s, priv: priv, pub: pub}, nil
}

// NewCirclPublicKey returns a verification only component of the named
// scheme.
func NewCirclPublicKey(name string, raw []byte) (*CirclKey, error) {
	s, security, err := circlScheme(name)
	if err != nil {
		return nil, err
	}
	pub, err := s.UnmarshalBinaryPublicKey(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return &CirclKey{name: name, security: security, scheme: s, pub: pub}, nil
}

func (k *CirclKey) Sign(digest []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, errors.ErrUnsupported.New("public key cannot sign")
	}
	return k.scheme.Sign(k.priv, digest, nil), nil
}

func (k *CirclKey) Verify(digest, sig []byte) bool {
	if len(sig) != k.scheme.SignatureSize() {
		return false
	}
	return k.scheme.Verify(k.pub, digest, sig, nil)
}

func (k *CirclKey) MaxSignatureSize() int {
	return k.scheme.SignatureSize()
}

func (k *CirclKey) Bits() int {
	return 8 * k.scheme.PublicKeySize()
}

func (k *CirclKey) SecurityBits() int {
	return k.security
}

func (k *CirclKey) Algorithm() string {
	return k.name
}

func (k *CirclKey) PublicKeyBytes() []byte {
	raw, err := k.pub.MarshalBinary()
	if err != nil {
		return nil
	}
	return raw
}

func (k *CirclKey) PublicComponent() composite.ComponentKey {
	return &CirclKey{name: k.name, security: k.security, scheme: k.scheme, pub: k.pub}
}

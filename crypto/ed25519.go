package crypto

import (
	"crypto/rand"

	composite "github.com/iov-one/composite"
	"github.com/iov-one/composite/errors"
	"github.com/stellar/go/exp/crypto/derivation"
	"golang.org/x/crypto/ed25519"
)

// Ed25519Name is the scheme name of Ed25519 components.
const Ed25519Name = "ed25519"

// Ed25519Key is an Ed25519 component. The digest is signed as the message.
type Ed25519Key struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

var _ composite.PublicKeyer = (*Ed25519Key)(nil)

// GenerateEd25519 returns a random new key.
func GenerateEd25519() (*Ed25519Key, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generate ed25519")
	}
	return &Ed25519Key{priv: priv, pub: pub}, nil
}

// Ed25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func Ed25519FromSeed(seed []byte) (*Ed25519Key, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.ErrInvalidInput.Newf("seed must be %d bytes", ed25519.SeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Ed25519Key{priv: priv, pub: priv.Public().(ed25519.PublicKey)}, nil
}

// DeriveEd25519 returns the key found at given SLIP-0010 path (for example
// "m/44'/234'/0'") of the master seed. Only hardened paths are supported.
func DeriveEd25519(seed []byte, path string) (*Ed25519Key, error) {
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "derive %q: %s", path, err)
	}
	return Ed25519FromSeed(k.Key)
}

// NewEd25519PublicKey returns a verification only component.
func NewEd25519PublicKey(raw []byte) (*Ed25519Key, error) {
	if len(raw) != ed25519.PublicKeySize {
		return nil, errors.ErrInvalidInput.Newf("public key must be %d bytes", ed25519.PublicKeySize)
	}
	return &Ed25519Key{pub: append(ed25519.PublicKey(nil), raw...)}, nil
}

func (k *Ed25519Key) Sign(digest []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, errors.ErrUnsupported.New("public key cannot sign")
	}
	return ed25519.Sign(k.priv, digest), nil
}

func (k *Ed25519Key) Verify(digest, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(k.pub, digest, sig)
}

func (*Ed25519Key) MaxSignatureSize() int { return ed25519.SignatureSize }
func (*Ed25519Key) Bits() int             { return 256 }
func (*Ed25519Key) SecurityBits() int     { return 128 }
func (*Ed25519Key) Algorithm() string     { return Ed25519Name }

func (k *Ed25519Key) PublicKeyBytes() []byte {
	return append([]byte(nil), k.pub...)
}

func (k *Ed25519Key) PublicComponent() composite.ComponentKey {
	return &Ed25519Key{pub: k.pub}
}

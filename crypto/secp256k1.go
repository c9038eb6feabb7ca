package crypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	composite "github.com/iov-one/composite"
	"github.com/iov-one/composite/errors"
)

// Secp256k1Name is the scheme name of ECDSA components on the secp256k1
// curve.
const Secp256k1Name = "secp256k1"

// Secp256k1Key is an ECDSA component on the secp256k1 curve. Signatures are
// DER encoded with a deterministic nonce. A digest that is not 32 bytes long
// is hashed with SHA-256 first.
type Secp256k1Key struct {
	priv *btcec.PrivateKey
	pub  *btcec.PublicKey
}

var _ composite.PublicKeyer = (*Secp256k1Key)(nil)

// GenerateSecp256k1 returns a random new key.
func GenerateSecp256k1() (*Secp256k1Key, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "generate secp256k1")
	}
	return &Secp256k1Key{priv: priv, pub: priv.PubKey()}, nil
}

// NewSecp256k1PublicKey returns a verification only component from a
// compressed or uncompressed public key.
func NewSecp256k1PublicKey(raw []byte) (*Secp256k1Key, error) {
	pub, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return &Secp256k1Key{pub: pub}, nil
}

func (k *Secp256k1Key) Sign(digest []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, errors.ErrUnsupported.New("public key cannot sign")
	}
	return ecdsa.Sign(k.priv, hashed32(digest)).Serialize(), nil
}

func (k *Secp256k1Key) Verify(digest, sig []byte) bool {
	s, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return s.Verify(hashed32(digest), k.pub)
}

func (*Secp256k1Key) MaxSignatureSize() int { return maxDERSignatureSize(256) }
func (*Secp256k1Key) Bits() int             { return 256 }
func (*Secp256k1Key) SecurityBits() int     { return 128 }
func (*Secp256k1Key) Algorithm() string     { return Secp256k1Name }

// PublicKeyBytes returns the compressed point.
func (k *Secp256k1Key) PublicKeyBytes() []byte {
	return k.pub.SerializeCompressed()
}

func (k *Secp256k1Key) PublicComponent() composite.ComponentKey {
	return &Secp256k1Key{pub: k.pub}
}

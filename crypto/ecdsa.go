package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"

	composite "github.com/iov-one/composite"
	"github.com/iov-one/composite/errors"
)

const (
	// P256Name is the scheme name of ECDSA components on the NIST P-256
	// curve.
	P256Name = "p256"
	// P384Name is the scheme name of ECDSA components on the NIST P-384
	// curve.
	P384Name = "p384"
)

// ECDSAKey is an ECDSA component on a NIST curve. Signatures are ASN.1 DER
// encoded.
type ECDSAKey struct {
	name string
	priv *ecdsa.PrivateKey
	pub  *ecdsa.PublicKey
}

var _ composite.PublicKeyer = (*ECDSAKey)(nil)

func curveName(c elliptic.Curve) (string, error) {
	switch c {
	case elliptic.P256():
		return P256Name, nil
	case elliptic.P384():
		return P384Name, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupported, "curve %s", c.Params().Name)
	}
}

// GenerateECDSA returns a random new key on given curve. Only P-256 and
// P-384 are supported.
func GenerateECDSA(c elliptic.Curve) (*ECDSAKey, error) {
	name, err := curveName(c)
	if err != nil {
		return nil, err
	}
	priv, err := ecdsa.GenerateKey(c, rand.Reader)
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", name)
	}
	return &ECDSAKey{name: name, priv: priv, pub: &priv.PublicKey}, nil
}

// NewECDSAPublicKey returns a verification only component.
func NewECDSAPublicKey(pub *ecdsa.PublicKey) (*ECDSAKey, error) {
	if pub == nil {
		return nil, errors.ErrParamNull.New("public key")
	}
	name, err := curveName(pub.Curve)
	if err != nil {
		return nil, err
	}
	return &ECDSAKey{name: name, pub: pub}, nil
}

func (k *ECDSAKey) Sign(digest []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, errors.ErrUnsupported.New("public key cannot sign")
	}
	sig, err := ecdsa.SignASN1(rand.Reader, k.priv, digest)
	if err != nil {
		return nil, errors.Wrapf(err, "%s sign", k.name)
	}
	return sig, nil
}

func (k *ECDSAKey) Verify(digest, sig []byte) bool {
	return ecdsa.VerifyASN1(k.pub, digest, sig)
}

func (k *ECDSAKey) MaxSignatureSize() int {
	return maxDERSignatureSize(k.pub.Curve.Params().N.BitLen())
}

func (k *ECDSAKey) Bits() int {
	return k.pub.Curve.Params().BitSize
}

func (k *ECDSAKey) SecurityBits() int {
	return k.Bits() / 2
}

func (k *ECDSAKey) Algorithm() string {
	return k.name
}

// PublicKeyBytes returns the compressed point.
func (k *ECDSAKey) PublicKeyBytes() []byte {
	return elliptic.MarshalCompressed(k.pub.Curve, k.pub.X, k.pub.Y)
}

func (k *ECDSAKey) PublicComponent() composite.ComponentKey {
	return &ECDSAKey{name: k.name, pub: k.pub}
}

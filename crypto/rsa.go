package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	composite "github.com/iov-one/composite"
	"github.com/iov-one/composite/errors"
)

// RSAKey is an RSA-PSS component. The hash function is chosen by the digest
// size (SHA-256, SHA-384 or SHA-512), any other digest is hashed with SHA-256
// first. The salt is as long as the hash.
type RSAKey struct {
	priv *rsa.PrivateKey
	pub  *rsa.PublicKey
}

var _ composite.PublicKeyer = (*RSAKey)(nil)

var pssOptions = &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash}

// RSAName returns the scheme name of RSA components of given modulus size.
func RSAName(bits int) string {
	return fmt.Sprintf("rsa%d", bits)
}

// GenerateRSA returns a random new key with given modulus size.
func GenerateRSA(bits int) (*RSAKey, error) {
	if bits < 2048 {
		return nil, errors.ErrInvalidInput.Newf("%d bits modulus is too weak", bits)
	}
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", RSAName(bits))
	}
	return &RSAKey{priv: priv, pub: &priv.PublicKey}, nil
}

// NewRSAPublicKey returns a verification only component.
func NewRSAPublicKey(pub *rsa.PublicKey) (*RSAKey, error) {
	if pub == nil || pub.N == nil {
		return nil, errors.ErrParamNull.New("public key")
	}
	return &RSAKey{pub: pub}, nil
}

func (k *RSAKey) Sign(digest []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, errors.ErrUnsupported.New("public key cannot sign")
	}
	h, hashed := hashedInput(digest)
	sig, err := rsa.SignPSS(rand.Reader, k.priv, h, hashed, pssOptions)
	if err != nil {
		return nil, errors.Wrapf(err, "%s sign", k.Algorithm())
	}
	return sig, nil
}

func (k *RSAKey) Verify(digest, sig []byte) bool {
	h, hashed := hashedInput(digest)
	return rsa.VerifyPSS(k.pub, h, hashed, sig, pssOptions) == nil
}

func (k *RSAKey) MaxSignatureSize() int {
	return k.pub.Size()
}

func (k *RSAKey) Bits() int {
	return k.pub.N.BitLen()
}

func (k *RSAKey) SecurityBits() int {
	return rsaSecurityBits(k.Bits())
}

func (k *RSAKey) Algorithm() string {
	return RSAName(k.Bits())
}

// PublicKeyBytes returns the PKCS #1 DER encoding of the public key.
func (k *RSAKey) PublicKeyBytes() []byte {
	return x509.MarshalPKCS1PublicKey(k.pub)
}

func (k *RSAKey) PublicComponent() composite.ComponentKey {
	return &RSAKey{pub: k.pub}
}

package crypto

import (
	"crypto"
	"crypto/sha256"
	_ "crypto/sha512" // SHA-384 and SHA-512 for RSA-PSS.
)

// maxDERSignatureSize returns the maximum length of a DER encoded ECDSA
// signature
//
//	SEQUENCE { r INTEGER, s INTEGER }
//
// for a curve with given order size.
func maxDERSignatureSize(orderBits int) int {
	// An integer may need a leading zero octet to stay positive.
	n := (orderBits+7)/8 + 1
	integer := 1 + derLenSize(n) + n
	seq := 2 * integer
	return 1 + derLenSize(seq) + seq
}

// derLenSize returns the number of octets used to encode a DER length.
func derLenSize(n int) int {
	if n < 0x80 {
		return 1
	}
	size := 1
	for ; n > 0; n >>= 8 {
		size++
	}
	return size
}

// rsaSecurityBits returns the estimated strength of an RSA key of given
// modulus size, following NIST SP 800-57.
func rsaSecurityBits(bits int) int {
	switch {
	case bits >= 15360:
		return 256
	case bits >= 7680:
		return 192
	case bits >= 3072:
		return 128
	case bits >= 2048:
		return 112
	case bits >= 1024:
		return 80
	default:
		return 0
	}
}

// hashedInput returns the digest together with the hash function it matches
// by size. A digest of any other size is hashed once more with SHA-256.
func hashedInput(digest []byte) (crypto.Hash, []byte) {
	switch len(digest) {
	case crypto.SHA256.Size():
		return crypto.SHA256, digest
	case crypto.SHA384.Size():
		return crypto.SHA384, digest
	case crypto.SHA512.Size():
		return crypto.SHA512, digest
	default:
		sum := sha256.Sum256(digest)
		return crypto.SHA256, sum[:]
	}
}

// hashed32 returns digest if it is 32 bytes long, otherwise its SHA-256.
func hashed32(digest []byte) []byte {
	if len(digest) == sha256.Size {
		return digest
	}
	sum := sha256.Sum256(digest)
	return sum[:]
}

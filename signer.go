package composite

import (
	"context"

	"github.com/iov-one/composite/codec"
	"github.com/iov-one/composite/errors"
	"github.com/tendermint/tendermint/libs/log"
	"golang.org/x/sync/errgroup"
)

// Signer creates composite signatures: every component of a key signs the
// same digest and the resulting signatures are encoded in the component
// order.
//
// Signer is stateless and safe for concurrent use.
type Signer struct {
	codec    codec.Codec
	logger   log.Logger
	parallel bool
}

// NewSigner returns a signer using the canonical DER encoding.
func NewSigner() Signer {
	return Signer{
		codec:  codec.Default,
		logger: log.NewNopLogger(),
	}
}

// WithCodec returns a copy of the signer that encodes signatures with given
// codec.
func (s Signer) WithCodec(c codec.Codec) Signer {
	s.codec = c
	return s
}

// WithLogger returns a copy of the signer that writes diagnostics to given
// logger.
func (s Signer) WithLogger(l log.Logger) Signer {
	s.logger = l
	return s
}

// Parallel returns a copy of the signer that runs component signing
// concurrently. The encoded order is not affected.
func (s Signer) Parallel() Signer {
	s.parallel = true
	return s
}

// SignatureSize returns the upper bound of the encoded signature size for
// given key: the sum of the maximum component signature sizes plus the
// encoding overhead of a sequence of signatures that large.
func (s Signer) SignatureSize(key *Key) (int, error) {
	if key.Len() == 0 {
		return 0, errors.ErrEmptyComponentSet.New("signature size")
	}
	sizes := make([]int, key.Len())
	for i, c := range key.components {
		sizes[i] = c.MaxSignatureSize()
	}
	return s.codec.MaxEncodedLen(sizes), nil
}

// SignTo writes the encoded composite signature of digest into dst and
// returns the number of bytes written.
//
// If dst is nil nothing is signed and the value of SignatureSize is returned.
// If dst is too small an ErrInvalidInput error is returned and dst is left
// untouched.
func (s Signer) SignTo(key *Key, dst, digest []byte) (int, error) {
	if dst == nil {
		return s.SignatureSize(key)
	}
	sig, err := s.Sign(key, digest)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(sig) {
		return 0, errors.ErrInvalidInput.Newf("destination too small: %d bytes, %d required", len(dst), len(sig))
	}
	return copy(dst, sig), nil
}

// Sign returns the encoded composite signature of digest. Digest must be
// already hashed, it is passed to all components unchanged.
//
// Failure of any component aborts the whole operation and no partial
// signature is returned.
func (s Signer) Sign(key *Key, digest []byte) ([]byte, error) {
	sig, err := s.sign(key, digest)
	if err != nil {
		report(s.logger, "composite sign", err)
		return nil, err
	}
	return sig, nil
}

func (s Signer) sign(key *Key, digest []byte) ([]byte, error) {
	if key.Len() == 0 {
		return nil, errors.ErrEmptyComponentSet.New("sign")
	}

	blobs := make([][]byte, key.Len())
	if s.parallel {
		g, ctx := errgroup.WithContext(context.Background())
		for i, c := range key.components {
			g.Go(func() error {
				// A sibling already failed, the result is discarded.
				if ctx.Err() != nil {
					return nil
				}
				blob, err := s.signComponent(i, c, digest)
				blobs[i] = blob
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, c := range key.components {
			blob, err := s.signComponent(i, c, digest)
			if err != nil {
				return nil, err
			}
			blobs[i] = blob
		}
	}

	sig, err := s.codec.Encode(blobs)
	if err != nil {
		return nil, errors.Wrap(err, "encode signature sequence")
	}
	s.logger.Debug("composite signature created",
		"components", len(blobs), "size", len(sig), "encoding", s.codec.Name())
	return sig, nil
}

func (s Signer) signComponent(i int, c ComponentKey, digest []byte) (blob []byte, err error) {
	defer func() {
		if err != nil {
			err = errors.Wrapf(errors.ErrComponentOperation, "sign component %d: %s", i, err)
		}
	}()
	defer errors.Recover(&err)

	blob, err = c.Sign(digest)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, errors.ErrEncoding.New("empty signature")
	}
	if limit := c.MaxSignatureSize(); len(blob) > limit {
		return nil, errors.ErrInvalidInput.Newf("signature of %d bytes exceeds declared maximum %d", len(blob), limit)
	}
	s.logger.Debug("component signature created", "component", i, "size", len(blob))
	return blob, nil
}

// report passes the kind and the message of a terminal failure to the
// logger.
func report(l log.Logger, op string, err error) {
	code, msg := errors.Info(err, false)
	l.Error(op+" failed", "code", code, "err", msg)
}

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"text/tabwriter"

	"github.com/iov-one/composite/crypto/bech32"
	"github.com/iov-one/composite/profile"
	"github.com/opencontainers/go-digest"
	"github.com/tendermint/tendermint/libs/log"
)

func cmdSign(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign a message with an ephemeral composite key.

A fresh key is generated from the profile, the message is hashed with the
profile digest, signed and the signature is verified back with the public half
of the key. The key is not stored.

Message is read from the file given with -in or from stdin.
`)
		fl.PrintDefaults()
	}
	var (
		profileFl = fl.String("profile", "", "Path to the JSON profile configuration.")
		inFl      = fl.String("in", "", "Path to the message file. Stdin is used if not provided.")
		outFl     = fl.String("out", "", "Path to the file the signature is written to.")
		logFl     = fl.String("log", "error", "Log level, one of debug, info, error or none.")
	)
	fl.Parse(args)

	if *profileFl == "" {
		flagDie("-profile is required")
	}
	logger, err := newLogger(os.Stderr, *logFl)
	if err != nil {
		flagDie("%s", err)
	}

	p, err := profile.Load(*profileFl)
	if err != nil {
		return fmt.Errorf("cannot load profile: %s", err)
	}

	if *inFl != "" {
		fd, err := os.Open(*inFl)
		if err != nil {
			return fmt.Errorf("cannot open message file: %s", err)
		}
		defer fd.Close()
		input = fd
	}

	res, err := sign(p, input, logger)
	if err != nil {
		return err
	}

	if *outFl != "" {
		if err := ioutil.WriteFile(*outFl, res.Signature, 0644); err != nil {
			return fmt.Errorf("cannot write signature: %s", err)
		}
	}

	w := tabwriter.NewWriter(output, 2, 0, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintf(w, "fingerprint\t%s\n", res.Fingerprint)
	fmt.Fprintf(w, "digest\t%s\n", res.Digest)
	fmt.Fprintf(w, "components\t%d\n", res.Components)
	fmt.Fprintf(w, "security bits\t%d\n", res.SecurityBits)
	fmt.Fprintf(w, "signature size\t%d\n", len(res.Signature))
	fmt.Fprintf(w, "max signature size\t%d\n", res.MaxSize)
	return nil
}

type signResult struct {
	Fingerprint  string
	Digest       digest.Digest
	Components   int
	SecurityBits int
	Signature    []byte
	MaxSize      int
}

func sign(p *profile.Profile, message io.Reader, logger log.Logger) (*signResult, error) {
	key, err := p.NewKey()
	if err != nil {
		return nil, fmt.Errorf("cannot create key: %s", err)
	}
	signer, err := p.Signer(logger)
	if err != nil {
		return nil, fmt.Errorf("cannot create signer: %s", err)
	}
	verifier, err := p.Verifier(logger)
	if err != nil {
		return nil, fmt.Errorf("cannot create verifier: %s", err)
	}

	dgst, err := p.DigestAlgorithm().FromReader(message)
	if err != nil {
		return nil, fmt.Errorf("cannot hash message: %s", err)
	}
	sum, err := hex.DecodeString(dgst.Encoded())
	if err != nil {
		return nil, fmt.Errorf("cannot decode digest: %s", err)
	}

	sig, err := signer.Sign(key, sum)
	if err != nil {
		return nil, fmt.Errorf("cannot sign: %s", err)
	}
	pub, err := key.Public()
	if err != nil {
		return nil, fmt.Errorf("cannot get public key: %s", err)
	}
	if err := verifier.Verify(pub, sum, sig); err != nil {
		return nil, fmt.Errorf("cannot verify created signature: %s", err)
	}
	fp, err := bech32.Fingerprint(pub)
	if err != nil {
		return nil, fmt.Errorf("cannot compute fingerprint: %s", err)
	}
	size, err := signer.SignatureSize(key)
	if err != nil {
		return nil, fmt.Errorf("cannot compute signature size: %s", err)
	}
	return &signResult{
		Fingerprint:  fp,
		Digest:       dgst,
		Components:   key.Len(),
		SecurityBits: key.SecurityBits(),
		Signature:    sig,
		MaxSize:      size,
	}, nil
}

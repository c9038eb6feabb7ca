package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"text/tabwriter"

	"github.com/iov-one/composite/codec"
)

func cmdInspect(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decode a composite signature and print the size of every component signature.

Signature is read from the file given with -in or from stdin.
`)
		fl.PrintDefaults()
	}
	var (
		inFl       = fl.String("in", "", "Path to the signature file. Stdin is used if not provided.")
		encodingFl = fl.String("encoding", codec.DERName, fmt.Sprintf("Signature encoding, one of %v.", codec.Names()))
	)
	fl.Parse(args)

	c, err := codec.ByName(*encodingFl)
	if err != nil {
		flagDie("%s", err)
	}

	if *inFl != "" {
		fd, err := os.Open(*inFl)
		if err != nil {
			return fmt.Errorf("cannot open signature file: %s", err)
		}
		defer fd.Close()
		input = fd
	}
	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return fmt.Errorf("cannot read signature: %s", err)
	}
	return inspect(output, c, raw)
}

func inspect(output io.Writer, c codec.Codec, raw []byte) error {
	blobs, err := c.Decode(raw)
	if err != nil {
		return fmt.Errorf("cannot decode %s signature: %s", c.Name(), err)
	}

	w := tabwriter.NewWriter(output, 2, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "encoding\t%s\n", c.Name())
	fmt.Fprintf(w, "size\t%d\n", len(raw))
	fmt.Fprintf(w, "components\t%d\n", len(blobs))
	for i, b := range blobs {
		fmt.Fprintf(w, "component %d\t%d bytes\n", i, len(b))
	}
	return nil
}

// flagDie terminates the program when a command line flag is not valid.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description+"\n", args...)
	os.Exit(2)
}

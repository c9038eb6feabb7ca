package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iov-one/composite/crypto"
)

func cmdSchemes(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
List component schemes that can be combined into a composite key.

Every scheme is generated once to report its signature size and strength.
`)
		fl.PrintDefaults()
	}
	var (
		headerFl = fl.Bool("header", true, "Display header")
	)
	fl.Parse(args)

	w := tabwriter.NewWriter(output, 2, 0, 2, ' ', 0)
	defer w.Flush()

	if *headerFl {
		fmt.Fprintln(w, "name\tmax signature\tbits\tsecurity bits")
	}
	for _, name := range crypto.Schemes() {
		k, err := crypto.Generate(name)
		if err != nil {
			return fmt.Errorf("cannot generate %s key: %s", name, err)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, k.MaxSignatureSize(), k.Bits(), k.SecurityBits())
	}
	return nil
}

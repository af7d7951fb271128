package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/voting"
)

func cmdAddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print an address in all supported formats. Each argument is an address in
one of the formats accepted by scenario and genesis files:

  <hex>, hex:<hex>, bech32:<bech32>, name:<any text>
		`)
		fl.PrintDefaults()
	}
	var (
		hrpFl = fl.String("hrp", "vote", "Human readable part of the bech32 representation.")
	)
	fl.Parse(args)

	if fl.NArg() == 0 {
		flagDie("at least one address is required")
	}
	for _, raw := range fl.Args() {
		addr, err := voting.ParseAddress(raw)
		if err != nil {
			return fmt.Errorf("%q: %s", raw, err)
		}
		if addr == nil {
			return fmt.Errorf("%q: empty address", raw)
		}
		b32, err := addr.Bech32(*hrpFl)
		if err != nil {
			return fmt.Errorf("%q: %s", raw, err)
		}
		fmt.Fprintf(output, "%s\t%s\n", addr, b32)
	}
	return nil
}

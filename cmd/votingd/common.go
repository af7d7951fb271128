package main

import (
	"fmt"
	"os"
)

// flagDie terminates the program when a command line flag is not valid.
func flagDie(description string, args ...interface{}) {
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	fmt.Fprintln(os.Stderr, description)
	os.Exit(2)
}

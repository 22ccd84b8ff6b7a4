// Command pyranha-types inspects the generators published by the pyranha type registry.
package main

import (
	"os"
)

const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

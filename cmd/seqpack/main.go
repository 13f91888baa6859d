// Package main provides seqpack, a tool for packing and inspecting sequence archive files.
package main

import (
	"os"

	"github.com/arloliu/seqpack/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args))
}

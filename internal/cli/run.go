// Package cli implements the seqpack command line tool.
package cli

import (
	"io"

	"github.com/arloliu/seqpack/fs"
)

// Run is the main entry point. args includes the program name. Returns exit code.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string) int {
	o := NewIO(in, out, errOut)
	fsys := fs.NewReal()

	commands := []*Command{
		PackCmd(fsys),
		UnpackCmd(fsys),
		GetCmd(fsys),
		SizeCmd(fsys),
		DigestCmd(fsys),
	}

	if len(args) < 2 {
		printUsage(o, commands)
		return 0
	}

	name := args[1]
	if name == "-h" || name == "--help" || name == "help" {
		printUsage(o, commands)
		return 0
	}

	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(o, args[2:])
		}
	}

	o.ErrPrintln("error: unknown command:", name)
	printUsage(NewIO(in, errOut, errOut), commands)

	return 1
}

func printUsage(o *IO, commands []*Command) {
	o.Println("seqpack - bit-packed storage for sequence archives")
	o.Println()
	o.Println("Usage: seqpack <command> [flags] [args]")
	o.Println()
	o.Println("Commands:")

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}
}

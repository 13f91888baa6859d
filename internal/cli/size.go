package cli

import (
	"fmt"

	"github.com/arloliu/seqpack/fs"

	flag "github.com/spf13/pflag"
)

// SizeCmd returns the size command.
func SizeCmd(fsys fs.FS) *Command {
	var cf codecFlags

	fl := flag.NewFlagSet("size", flag.ContinueOnError)
	cf.register(fl)
	count := fl.Int64P("count", "n", 0, "number of values")

	return &Command{
		Flags: fl,
		Usage: "size [flags]",
		Short: "Print the file size of --count values",
		Exec: func(o *IO, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("%w: size takes no arguments", errUsage)
			}

			opener, err := cf.opener(fsys)
			if err != nil {
				return err
			}

			size, err := opener.ByteLength(*count)
			if err != nil {
				return err
			}

			o.Println(size)

			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/arloliu/seqpack/fs"

	flag "github.com/spf13/pflag"
)

// DigestCmd returns the digest command.
func DigestCmd(fsys fs.FS) *Command {
	return &Command{
		Flags: flag.NewFlagSet("digest", flag.ContinueOnError),
		Usage: "digest <file>...",
		Short: "Print the xxHash64 digest of files",
		Long:  "Print the xxHash64 digest and size of each file. Equal packed files have equal digests.",
		Exec: func(o *IO, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: digest needs at least one file", errUsage)
			}

			for _, path := range args {
				sum, size, err := digestFile(fsys, path)
				if err != nil {
					return err
				}

				o.Printf("%016x  %12d  %s\n", sum, size, path)
			}

			return nil
		},
	}
}

package cli

import (
	"fmt"
	"io"

	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/internal/hash"
	"github.com/arloliu/seqpack/stream"

	flag "github.com/spf13/pflag"
)

// UnpackCmd returns the unpack command.
func UnpackCmd(fsys fs.FS) *Command {
	var cf codecFlags

	fl := flag.NewFlagSet("unpack", flag.ContinueOnError)
	cf.register(fl)
	count := fl.Int64P("count", "n", stream.UnknownLength, "number of values (-1 derives it from the file size)")

	return &Command{
		Flags: fl,
		Usage: "unpack [flags] <in> <out>",
		Short: "Unpack a codec file into raw value bytes",
		Long: "Read <in> with the codec configured for --kind and write one value per byte to\n" +
			"<out> (\"-\" for stdout). Files are replaced atomically.",
		Exec: func(o *IO, args []string) error {
			return execUnpack(o, fsys, &cf, *count, args)
		},
	}
}

func execUnpack(o *IO, fsys fs.FS, cf *codecFlags, count int64, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: unpack needs <in> and <out>", errUsage)
	}

	opener, err := cf.opener(fsys)
	if err != nil {
		return err
	}

	r, err := opener.Open(args[0], count)
	if err != nil {
		return err
	}
	defer r.Close()

	if args[1] == stdio {
		if _, err := io.Copy(o.out, r); err != nil {
			return fmt.Errorf("unpack %s: %w", args[0], err)
		}

		return nil
	}

	digest := hash.NewWriter()
	if err := fsys.WriteFileAtomic(args[1], io.TeeReader(r, digest)); err != nil {
		return fmt.Errorf("unpack %s: %w", args[0], err)
	}

	o.Printf("values: %d\n", digest.Len())
	o.Printf("xxhash64: %016x\n", digest.Sum64())

	return nil
}

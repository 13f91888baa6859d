package cli

import (
	"fmt"
	"io"

	"github.com/arloliu/seqpack/fs"

	flag "github.com/spf13/pflag"
)

// PackCmd returns the pack command.
func PackCmd(fsys fs.FS) *Command {
	var cf codecFlags

	fl := flag.NewFlagSet("pack", flag.ContinueOnError)
	cf.register(fl)

	return &Command{
		Flags: fl,
		Usage: "pack [flags] <in> <out>",
		Short: "Pack raw value bytes into a codec file",
		Long: "Read one value per byte from <in> (\"-\" for stdin) and write them with the codec\n" +
			"configured for --kind. Prints the value count and the digest of the packed file.",
		Exec: func(o *IO, args []string) error {
			return execPack(o, fsys, &cf, args)
		},
	}
}

func execPack(o *IO, fsys fs.FS, cf *codecFlags, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: pack needs <in> and <out>", errUsage)
	}

	opener, err := cf.opener(fsys)
	if err != nil {
		return err
	}

	src, closeSrc, err := openInput(o, fsys, args[0])
	if err != nil {
		return err
	}
	defer closeSrc()

	w, err := opener.Create(args[1])
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()
		return fmt.Errorf("pack %s: %w", args[0], err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("pack %s: %w", args[0], err)
	}

	sum, size, err := digestFile(fsys, args[1])
	if err != nil {
		return err
	}

	o.Printf("encoding: %s\n", opener.Encoding())
	o.Printf("values: %d\n", w.ValuesWritten())
	o.Printf("bytes: %d\n", size)
	o.Printf("xxhash64: %016x\n", sum)

	return nil
}

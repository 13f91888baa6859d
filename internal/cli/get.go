package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/stream"

	flag "github.com/spf13/pflag"
)

// GetCmd returns the get command.
func GetCmd(fsys fs.FS) *Command {
	var cf codecFlags

	fl := flag.NewFlagSet("get", flag.ContinueOnError)
	cf.register(fl)
	count := fl.Int64P("count", "n", stream.UnknownLength, "number of values (-1 derives it from the file size)")
	offset := fl.Int64P("offset", "o", 0, "index of the first value")
	length := fl.Int64P("length", "l", 1, "number of values to print")

	return &Command{
		Flags: fl,
		Usage: "get [flags] <file>",
		Short: "Print values at an index of a codec file",
		Long:  "Seek to --offset in <file> and print up to --length values as decimal numbers.",
		Exec: func(o *IO, args []string) error {
			return execGet(o, fsys, &cf, *count, *offset, *length, args)
		},
	}
}

func execGet(o *IO, fsys fs.FS, cf *codecFlags, count, offset, length int64, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: get needs <file>", errUsage)
	}

	if length < 0 {
		return fmt.Errorf("%w: negative length %d", errUsage, length)
	}

	opener, err := cf.opener(fsys)
	if err != nil {
		return err
	}

	r, err := opener.OpenRandomAccess(args[0], count)
	if err != nil {
		return err
	}
	defer r.Close()

	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return err
	}

	buf := make([]byte, min(length, r.Len()-offset))
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	parts := make([]string, len(buf))
	for i, v := range buf {
		parts[i] = strconv.Itoa(int(v))
	}
	o.Println(strings.Join(parts, " "))

	return nil
}

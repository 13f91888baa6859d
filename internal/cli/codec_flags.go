package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/seqpack/codec"
	"github.com/arloliu/seqpack/config"
	"github.com/arloliu/seqpack/format"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/internal/hash"

	flag "github.com/spf13/pflag"
)

var errUsage = errors.New("invalid arguments")

// stdio is the path that selects stdin or stdout.
const stdio = "-"

// codecFlags selects the codec a command reads or writes with.
type codecFlags struct {
	configPath string
	kind       string
}

func (c *codecFlags) register(fl *flag.FlagSet) {
	fl.StringVarP(&c.configPath, "config", "c", "", "JSONC codec configuration (built-in defaults when empty)")
	fl.StringVarP(&c.kind, "kind", "k", "sequence", "data kind: label, sequence or quality")
}

func (c *codecFlags) opener(fsys fs.FS) (codec.Opener, error) {
	cfg := codec.DefaultConfig()

	if c.configPath != "" {
		loaded, err := config.Load(fsys, c.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	kind, err := format.ParseDataKind(c.kind)
	if err != nil {
		return nil, err
	}

	factory, err := codec.NewFactory(cfg, codec.WithFS(fsys))
	if err != nil {
		return nil, err
	}

	return factory.Opener(kind)
}

// openInput opens path for reading, or returns stdin for "-".
func openInput(o *IO, fsys fs.FS, path string) (io.Reader, func(), error) {
	if path == stdio {
		return o.in, func() {}, nil
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

// digestFile returns the xxHash64 and size of the file at path.
func digestFile(fsys fs.FS, path string) (uint64, int64, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	sum, n, err := hash.Digest(f)
	if err != nil {
		return 0, 0, fmt.Errorf("digest %s: %w", path, err)
	}

	return sum, n, nil
}

// Package seqpack provides bit-packed storage for the value streams of a sequence
// archive: nucleotide codes, quality scores and labels.
//
// Values are small integers stored at the minimum number of bits per element, both in
// memory and on disk, and addressed by 64-bit element index.
//
// # Core Features
//
//   - Bitwise layout: 64 values per chunk, one 64-bit word per bit-plane
//   - Compressed layout: values as base-r digits of single 64-bit words, with an optional
//     escape code for values above the declared maximum
//   - Streaming writers and forward or seekable readers over headerless files
//   - In-memory arrays whose dump is byte-identical to the streamed file
//   - Element counts beyond 2^31 with overflow-checked offsets
//
// # Basic Usage
//
// Streaming sequence codes through the configured codec:
//
//	factory, _ := seqpack.LoadFactory(fs.NewReal(), "")
//
//	w, _ := factory.Sequence().Create("reads.seq")
//	w.Write([]byte{0, 1, 2, 3, 4})
//	w.Close()
//
//	r, _ := factory.Sequence().OpenRandomAccess("reads.seq", 5)
//	defer r.Close()
//	r.Seek(3, io.SeekStart)
//	v, _ := r.ReadByte() // 3
//
// Building an array in memory and writing it in one pass:
//
//	arr, _ := seqpack.NewSequenceArray(codec.DefaultConfig(), n)
//	arr.SetRange(0, codes)
//	seqpack.WritePackedFile(fs.NewReal(), "reads.seq", arr, n)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the packed, stream and
// codec packages. For fine-grained control, use those packages directly.
package seqpack

import (
	"fmt"
	"io"

	"github.com/arloliu/seqpack/codec"
	"github.com/arloliu/seqpack/config"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/packed"
)

// LoadFactory builds a codec factory from the JSONC configuration at path.
// An empty path selects codec.DefaultConfig.
func LoadFactory(fsys fs.FS, path string) (*codec.Factory, error) {
	cfg := codec.DefaultConfig()

	if path != "" {
		loaded, err := config.Load(fsys, path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	return codec.NewFactory(cfg, codec.WithFS(fsys))
}

// NewSequenceArray creates an in-memory array of count sequence codes laid out like
// the sequence files of cfg.
func NewSequenceArray(cfg codec.Config, count int64) (packed.Dumper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := arrayOptions(cfg)

	switch cfg.SequenceEncoding {
	case format.EncodingBitwise:
		return dumper(packed.NewBitwiseArray(count, cfg.AlphabetSize, opts...))
	case format.EncodingCompressed:
		return dumper(packed.NewCompressedArray(count, cfg.AlphabetSize-1, false, opts...))
	default:
		return nil, fmt.Errorf("%w: %s sequences have no packed array", errs.ErrInvalidConfig, cfg.SequenceEncoding)
	}
}

// NewQualityArray creates an in-memory array of count quality values laid out like
// the quality files of cfg.
func NewQualityArray(cfg codec.Config, count int64) (packed.Dumper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := arrayOptions(cfg)

	switch cfg.QualityEncoding {
	case format.EncodingBitwise:
		return dumper(packed.NewBitwiseArray(count, cfg.QualityRange(), opts...))
	case format.EncodingCompressed:
		return dumper(packed.NewCompressedArray(count, cfg.MaxQuality, cfg.ExtendedQuality, opts...))
	default:
		return nil, fmt.Errorf("%w: %s qualities have no packed array", errs.ErrInvalidConfig, cfg.QualityEncoding)
	}
}

// dumper converts a constructor result without wrapping a nil pointer in the interface.
func dumper[A packed.Dumper](arr A, err error) (packed.Dumper, error) {
	if err != nil {
		return nil, err
	}

	return arr, nil
}

func arrayOptions(cfg codec.Config) []packed.ArrayOption {
	if cfg.ByteOrder == nil {
		return nil
	}

	return []packed.ArrayOption{packed.WithByteOrder(cfg.ByteOrder)}
}

// WritePackedFile dumps the first count elements of arr to path.
//
// The file is replaced atomically: readers see either the previous content or the
// complete dump.
func WritePackedFile(fsys fs.FS, path string, arr packed.Dumper, count int64) error {
	pr, pw := io.Pipe()
	dumped := make(chan error, 1)

	go func() {
		err := arr.DumpPacked(pw, count)
		_ = pw.CloseWithError(err)
		dumped <- err
	}()

	writeErr := fsys.WriteFileAtomic(path, pr)
	// Unblocks the dump when the write failed before draining the pipe.
	_ = pr.CloseWithError(writeErr)

	if err := <-dumped; err != nil {
		return fmt.Errorf("write packed file %s: %w", path, err)
	}

	if writeErr != nil {
		return fmt.Errorf("write packed file %s: %w", path, writeErr)
	}

	return nil
}

// Loader is an array that can read its packed representation back.
type Loader interface {
	LoadPacked(r io.Reader, count int64) error
}

// ReadPackedFile loads the first count elements of arr from the file at path.
func ReadPackedFile(fsys fs.FS, path string, arr Loader, count int64) error {
	f, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := arr.LoadPacked(f, count); err != nil {
		return fmt.Errorf("read packed file %s: %w", path, err)
	}

	return nil
}

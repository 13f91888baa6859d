// Package codec selects the streaming codec of each data kind of a sequence archive.
//
// A Factory is built once from a Config. Construction validates the configuration,
// so an unknown encoding or an unpackable value domain is reported before any file is
// touched. The factory itself performs no I/O:
//
//	f, err := codec.NewFactory(codec.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	r, err := f.Sequence().OpenRandomAccess("reads.seq", n)
//
// Labels always use the raw codec. Sequence and quality files use the bitwise,
// compressed or raw codec selected by the configuration.
package codec

import (
	"fmt"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/internal/options"
)

// Factory hands out the openers for labels, sequences and qualities.
// It is immutable and safe for concurrent use.
type Factory struct {
	cfg      Config
	label    *RawOpener
	sequence Opener
	quality  Opener
}

type factoryConfig struct {
	fsys fs.FS
}

// FactoryOption configures NewFactory.
type FactoryOption = options.Option[*factoryConfig]

// WithFS sets the filesystem used by the openers. fs.NewReal() is the default.
func WithFS(fsys fs.FS) FactoryOption {
	return options.New(func(c *factoryConfig) error {
		if fsys == nil {
			return fmt.Errorf("%w: nil filesystem", errs.ErrInvalidConfig)
		}
		c.fsys = fsys

		return nil
	})
}

// NewFactory validates cfg and builds the openers.
func NewFactory(cfg Config, opts ...FactoryOption) (*Factory, error) {
	fc := &factoryConfig{fsys: fs.NewReal()}
	if err := options.Apply(fc, opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.ByteOrder == nil {
		cfg.ByteOrder = endian.GetLittleEndianEngine()
	}

	base := fileOpener{fsys: fc.fsys, engine: cfg.ByteOrder}

	f := &Factory{
		cfg:   cfg,
		label: &RawOpener{fileOpener: base},
	}

	switch cfg.SequenceEncoding {
	case format.EncodingBitwise:
		f.sequence = &BitwiseOpener{fileOpener: base, rng: cfg.AlphabetSize}
	case format.EncodingCompressed:
		f.sequence = &CompressedOpener{fileOpener: base, maxValue: cfg.AlphabetSize - 1}
	default:
		f.sequence = &RawOpener{fileOpener: base}
	}

	switch cfg.QualityEncoding {
	case format.EncodingBitwise:
		f.quality = &BitwiseOpener{fileOpener: base, rng: cfg.QualityRange()}
	case format.EncodingCompressed:
		f.quality = &CompressedOpener{fileOpener: base, maxValue: cfg.MaxQuality, extended: cfg.ExtendedQuality}
	default:
		f.quality = &RawOpener{fileOpener: base}
	}

	return f, nil
}

// Config returns the configuration the factory was built from.
func (f *Factory) Config() Config {
	return f.cfg
}

// Label returns the opener for label files.
func (f *Factory) Label() Opener {
	return f.label
}

// Sequence returns the opener for sequence files.
func (f *Factory) Sequence() Opener {
	return f.sequence
}

// Quality returns the opener for quality files.
func (f *Factory) Quality() Opener {
	return f.quality
}

// Opener returns the opener for kind.
func (f *Factory) Opener(kind format.DataKind) (Opener, error) {
	switch kind {
	case format.KindLabel:
		return f.label, nil
	case format.KindSequence:
		return f.sequence, nil
	case format.KindQuality:
		return f.quality, nil
	default:
		return nil, fmt.Errorf("%w: data kind %d", errs.ErrInvalidConfig, kind)
	}
}

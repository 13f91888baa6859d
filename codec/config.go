package codec

import (
	"fmt"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
	"github.com/arloliu/seqpack/packed"
)

// Default value domain of a nucleotide archive: A, C, G, T and N, with quality scores
// up to Phred 63.
const (
	DefaultAlphabetSize = 5
	DefaultMaxQuality   = 63
)

// Config selects the encoding of each data kind and the value domains.
type Config struct {
	// SequenceEncoding is the encoding of sequence files.
	SequenceEncoding format.EncodingType
	// QualityEncoding is the encoding of quality files.
	QualityEncoding format.EncodingType
	// AlphabetSize is the number of sequence codes, in [1, 256].
	AlphabetSize int
	// MaxQuality is the largest quality value stored as itself.
	MaxQuality int
	// ExtendedQuality reserves an escape code for quality values above MaxQuality.
	ExtendedQuality bool
	// ByteOrder of packed words. Nil selects little-endian.
	ByteOrder endian.EndianEngine
}

// DefaultConfig returns bitwise sequences, compressed qualities and the default
// value domain in little-endian byte order.
func DefaultConfig() Config {
	return Config{
		SequenceEncoding: format.EncodingBitwise,
		QualityEncoding:  format.EncodingCompressed,
		AlphabetSize:     DefaultAlphabetSize,
		MaxQuality:       DefaultMaxQuality,
		ByteOrder:        endian.GetLittleEndianEngine(),
	}
}

// QualityRange returns the number of distinct quality codes, escape included.
func (c Config) QualityRange() int {
	if c.ExtendedQuality {
		return c.MaxQuality + 2
	}

	return c.MaxQuality + 1
}

// Validate reports the first setting that cannot be served.
// Every error wraps errs.ErrInvalidConfig.
func (c Config) Validate() error {
	if !c.SequenceEncoding.IsValid() {
		return fmt.Errorf("%w: sequence encoding %d", errs.ErrInvalidConfig, c.SequenceEncoding)
	}

	if !c.QualityEncoding.IsValid() {
		return fmt.Errorf("%w: quality encoding %d", errs.ErrInvalidConfig, c.QualityEncoding)
	}

	if c.AlphabetSize < 1 || c.AlphabetSize > packed.MaxRange {
		return fmt.Errorf("%w: alphabet size %d not in [1, %d]", errs.ErrInvalidConfig, c.AlphabetSize, packed.MaxRange)
	}

	if c.MaxQuality < 0 || c.QualityRange() > packed.MaxRange {
		return fmt.Errorf("%w: max quality %d (extended=%t) needs more than %d codes",
			errs.ErrInvalidConfig, c.MaxQuality, c.ExtendedQuality, packed.MaxRange)
	}

	return nil
}

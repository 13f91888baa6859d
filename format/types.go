package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/seqpack/errs"
)

type (
	EncodingType uint8
	DataKind     uint8
)

const (
	EncodingBitwise    EncodingType = 0x1 // EncodingBitwise packs values in bit-planes of 64 elements.
	EncodingCompressed EncodingType = 0x2 // EncodingCompressed packs values as base-range digits of a word.
	EncodingRaw        EncodingType = 0x3 // EncodingRaw stores one value per byte.

	KindLabel    DataKind = 0x1 // KindLabel is read name/label data.
	KindSequence DataKind = 0x2 // KindSequence is nucleotide or residue code data.
	KindQuality  DataKind = 0x3 // KindQuality is per-base quality score data.
)

func (e EncodingType) String() string {
	switch e {
	case EncodingBitwise:
		return "Bitwise"
	case EncodingCompressed:
		return "Compressed"
	case EncodingRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e is one of the defined encodings.
func (e EncodingType) IsValid() bool {
	return e >= EncodingBitwise && e <= EncodingRaw
}

// ParseEncodingType parses a case-insensitive encoding name.
// "uncompressed" is accepted as an alias of "raw".
func ParseEncodingType(s string) (EncodingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bitwise":
		return EncodingBitwise, nil
	case "compressed":
		return EncodingCompressed, nil
	case "raw", "uncompressed":
		return EncodingRaw, nil
	default:
		return 0, fmt.Errorf("%w: unknown encoding %q", errs.ErrInvalidConfig, s)
	}
}

func (k DataKind) String() string {
	switch k {
	case KindLabel:
		return "Label"
	case KindSequence:
		return "Sequence"
	case KindQuality:
		return "Quality"
	default:
		return "Unknown"
	}
}

// ParseDataKind parses a case-insensitive data kind name.
func ParseDataKind(s string) (DataKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "label", "labels":
		return KindLabel, nil
	case "sequence", "seq":
		return KindSequence, nil
	case "quality", "qual":
		return KindQuality, nil
	default:
		return 0, fmt.Errorf("%w: unknown data kind %q", errs.ErrInvalidConfig, s)
	}
}

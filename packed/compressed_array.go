package packed

// CompressedArray is an in-memory PackedArray using the base-r digit layout.
//
// Quality scores are its main use: with maxValue 40 a word holds 11 values, 5.8 bits
// each, where whole-bit packing needs 6.
type CompressedArray struct {
	chunkArray
	compressed *CompressedLayout
}

var _ Dumper = (*CompressedArray)(nil)

// NewCompressedArray creates a zero-filled array of count values in [0, maxValue].
//
// With extended set, values above maxValue are accepted and stored as the escape code
// maxValue+1.
func NewCompressedArray(count int64, maxValue int, extended bool, opts ...ArrayOption) (*CompressedArray, error) {
	cfg, err := newArrayConfig(opts)
	if err != nil {
		return nil, err
	}

	layout, err := NewCompressedLayout(maxValue, extended, cfg.engine)
	if err != nil {
		return nil, err
	}

	core, err := newChunkArray(count, layout)
	if err != nil {
		return nil, err
	}

	return &CompressedArray{chunkArray: core, compressed: layout}, nil
}

// MaxValue returns the largest value stored as itself.
func (a *CompressedArray) MaxValue() int {
	return a.compressed.MaxValue()
}

// Extended reports whether values above MaxValue are stored as an escape code.
func (a *CompressedArray) Extended() bool {
	return a.compressed.Extended()
}

// Escape returns the escape code and true for extended arrays.
func (a *CompressedArray) Escape() (byte, bool) {
	return a.compressed.Escape()
}

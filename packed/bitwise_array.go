package packed

// BitwiseArray is an in-memory PackedArray using the bit-plane layout.
//
// It allocates MinBits(rng) words per 64 elements. Use it to build data that is later
// dumped in one pass into the same form BitwiseFileWriter produces.
type BitwiseArray struct {
	chunkArray
	bitwise *BitwiseLayout
}

var _ Dumper = (*BitwiseArray)(nil)

// NewBitwiseArray creates a zero-filled array of count values in [0, rng).
func NewBitwiseArray(count int64, rng int, opts ...ArrayOption) (*BitwiseArray, error) {
	cfg, err := newArrayConfig(opts)
	if err != nil {
		return nil, err
	}

	layout, err := NewBitwiseLayout(rng, cfg.engine)
	if err != nil {
		return nil, err
	}

	core, err := newChunkArray(count, layout)
	if err != nil {
		return nil, err
	}

	return &BitwiseArray{chunkArray: core, bitwise: layout}, nil
}

// Bits returns the number of bits stored per element.
func (a *BitwiseArray) Bits() int {
	return a.bitwise.Bits()
}

// Range returns the exclusive upper bound of stored values.
func (a *BitwiseArray) Range() int {
	return a.bitwise.Range()
}

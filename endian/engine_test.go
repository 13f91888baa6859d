package endian

import (
	"encoding/binary"
	"testing"

	"github.com/arloliu/seqpack/errs"
	"github.com/stretchr/testify/require"
)

func TestParseEngine(t *testing.T) {
	tests := []struct {
		in   string
		want EndianEngine
	}{
		{"", binary.LittleEndian},
		{"little", binary.LittleEndian},
		{"LE", binary.LittleEndian},
		{"Big", binary.BigEndian},
		{" be ", binary.BigEndian},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEngine(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseEngine("middle")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestName(t *testing.T) {
	require.Equal(t, "little", Name(GetLittleEndianEngine()))
	require.Equal(t, "big", Name(GetBigEndianEngine()))
}

func TestWordsRoundTrip(t *testing.T) {
	words := []uint64{0, 1, 0x0102030405060708, ^uint64(0)}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := AppendWords(engine, nil, words)
		require.Len(t, buf, len(words)*WordSize)

		put := make([]byte, len(words)*WordSize)
		PutWords(engine, put, words)
		require.Equal(t, buf, put)

		got := make([]uint64, len(words))
		ReadWords(engine, got, buf)
		require.Equal(t, words, got)
	}
}

func TestAppendWords_ByteOrder(t *testing.T) {
	le := AppendWords(GetLittleEndianEngine(), nil, []uint64{0x0102030405060708})
	be := AppendWords(GetBigEndianEngine(), nil, []uint64{0x0102030405060708})

	require.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, le)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, be)
}

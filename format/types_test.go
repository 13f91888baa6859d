package format

import (
	"testing"

	"github.com/arloliu/seqpack/errs"
	"github.com/stretchr/testify/require"
)

func TestParseEncodingType(t *testing.T) {
	tests := []struct {
		in   string
		want EncodingType
	}{
		{"bitwise", EncodingBitwise},
		{"Compressed", EncodingCompressed},
		{" raw ", EncodingRaw},
		{"uncompressed", EncodingRaw},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEncodingType(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, got.IsValid())
		})
	}

	_, err := ParseEncodingType("zstd")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestEncodingType_IsValid(t *testing.T) {
	require.False(t, EncodingType(0).IsValid())
	require.False(t, EncodingType(4).IsValid())
	require.Equal(t, "Unknown", EncodingType(0).String())
	require.Equal(t, "Bitwise", EncodingBitwise.String())
}

func TestParseDataKind(t *testing.T) {
	tests := []struct {
		in   string
		want DataKind
	}{
		{"label", KindLabel},
		{"labels", KindLabel},
		{"SEQ", KindSequence},
		{"sequence", KindSequence},
		{"qual", KindQuality},
	}

	for _, tt := range tests {
		got, err := ParseDataKind(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseDataKind("index")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
	require.Equal(t, "Quality", KindQuality.String())
}

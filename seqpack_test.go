package seqpack

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/seqpack/codec"
	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/packed"
	"github.com/stretchr/testify/require"
)

func randomValues(seed int64, n, codes int) []byte {
	rng := rand.New(rand.NewSource(seed))
	values := make([]byte, n)
	for i := range values {
		values[i] = byte(rng.Intn(codes))
	}

	return values
}

func TestLoadFactory(t *testing.T) {
	fsys := fs.NewReal()

	f, err := LoadFactory(fsys, "")
	require.NoError(t, err)
	require.Equal(t, codec.DefaultConfig(), f.Config())

	path := filepath.Join(t.TempDir(), "seqpack.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"sequence_encoding": "compressed"}`), 0o644))

	f, err = LoadFactory(fsys, path)
	require.NoError(t, err)
	require.Equal(t, format.EncodingCompressed, f.Sequence().Encoding())

	require.NoError(t, os.WriteFile(path, []byte(`{"sequence_encoding": "gzip"}`), 0o644))
	_, err = LoadFactory(fsys, path)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestArraysMatchStreamedFiles(t *testing.T) {
	configs := map[string]codec.Config{
		"default": codec.DefaultConfig(),
		"compressed sequence, bitwise extended quality": {
			SequenceEncoding: format.EncodingCompressed,
			QualityEncoding:  format.EncodingBitwise,
			AlphabetSize:     4,
			MaxQuality:       40,
			ExtendedQuality:  true,
			ByteOrder:        endian.GetBigEndianEngine(),
		},
	}

	fsys := fs.NewReal()
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			factory, err := codec.NewFactory(cfg)
			require.NoError(t, err)

			const n = 4099
			seqValues := randomValues(1, n, cfg.AlphabetSize)
			qualValues := randomValues(2, n, cfg.QualityRange())

			seq, err := NewSequenceArray(cfg, n)
			require.NoError(t, err)
			require.NoError(t, seq.SetRange(0, seqValues))

			qual, err := NewQualityArray(cfg, n)
			require.NoError(t, err)
			require.NoError(t, qual.SetRange(0, qualValues))

			for _, tc := range []struct {
				name   string
				arr    packed.Dumper
				opener codec.Opener
				values []byte
			}{
				{"seq", seq, factory.Sequence(), seqValues},
				{"qual", qual, factory.Quality(), qualValues},
			} {
				dumped := filepath.Join(dir, tc.name+".dump")
				streamed := filepath.Join(dir, tc.name+".stream")

				require.NoError(t, WritePackedFile(fsys, dumped, tc.arr, n))

				w, err := tc.opener.Create(streamed)
				require.NoError(t, err)
				_, err = w.Write(tc.values)
				require.NoError(t, err)
				require.NoError(t, w.Close())

				a, err := os.ReadFile(dumped)
				require.NoError(t, err)
				b, err := os.ReadFile(streamed)
				require.NoError(t, err)
				require.Equal(t, b, a, tc.name)

				size, err := tc.opener.ByteLength(n)
				require.NoError(t, err)
				require.Equal(t, size, int64(len(a)))

				r, err := tc.opener.Open(dumped, n)
				require.NoError(t, err)
				got, err := io.ReadAll(r)
				require.NoError(t, err)
				require.NoError(t, r.Close())
				require.Equal(t, tc.values, got)
			}
		})
	}
}

func TestReadPackedFile(t *testing.T) {
	fsys := fs.NewReal()
	cfg := codec.DefaultConfig()
	path := filepath.Join(t.TempDir(), "reads.seq")

	const n = 1000
	values := randomValues(3, n, cfg.AlphabetSize)

	src, err := NewSequenceArray(cfg, n)
	require.NoError(t, err)
	require.NoError(t, src.SetRange(0, values))
	require.NoError(t, WritePackedFile(fsys, path, src, n))

	dst, err := packed.NewBitwiseArray(n, cfg.AlphabetSize)
	require.NoError(t, err)
	require.NoError(t, ReadPackedFile(fsys, path, dst, n))

	got := make([]byte, n)
	require.NoError(t, dst.GetRange(got, 0))
	require.Equal(t, values, got)

	big, err := packed.NewBitwiseArray(2*n, cfg.AlphabetSize)
	require.NoError(t, err)
	require.ErrorIs(t, ReadPackedFile(fsys, path, big, 2*n), errs.ErrTruncated)
}

func TestWritePackedFile_FailedDumpLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.seq")

	arr, err := NewSequenceArray(codec.DefaultConfig(), 10)
	require.NoError(t, err)

	err = WritePackedFile(fs.NewReal(), path, arr, 11)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestNewArrays_Errors(t *testing.T) {
	cfg := codec.DefaultConfig()
	cfg.SequenceEncoding = format.EncodingRaw
	cfg.QualityEncoding = format.EncodingRaw

	_, err := NewSequenceArray(cfg, 1)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
	_, err = NewQualityArray(cfg, 1)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	arr, err := NewSequenceArray(codec.DefaultConfig(), -1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	require.Nil(t, arr)

	cfg = codec.DefaultConfig()
	cfg.AlphabetSize = 0
	_, err = NewSequenceArray(cfg, 1)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

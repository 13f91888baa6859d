package codec

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFS records the paths the openers touch.
type countingFS struct {
	*fs.Real
	opened  []string
	created []string
}

func (c *countingFS) Open(path string) (fs.File, error) {
	c.opened = append(c.opened, path)
	return c.Real.Open(path)
}

func (c *countingFS) Create(path string) (fs.File, error) {
	c.created = append(c.created, path)
	return c.Real.Create(path)
}

func TestNewFactory_Selection(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()

	f, err := NewFactory(cfg)
	require.NoError(t, err)

	require.IsType(t, &RawOpener{}, f.Label())
	require.IsType(t, &BitwiseOpener{}, f.Sequence())
	require.IsType(t, &CompressedOpener{}, f.Quality())
	require.Equal(t, DefaultAlphabetSize, f.Sequence().(*BitwiseOpener).Range())
	require.Equal(t, DefaultMaxQuality, f.Quality().(*CompressedOpener).MaxValue())

	tests := []struct {
		name       string
		opener     Opener
		values     []byte
		wantWriter any
		wantReader any
	}{
		{"label", f.Label(), []byte("read/1"), &stream.RawFileWriter{}, &stream.RawFileReader{}},
		{"sequence", f.Sequence(), []byte{0, 1, 2, 3, 4}, &stream.BitwiseFileWriter{}, &stream.BitwiseFileReader{}},
		{"quality", f.Quality(), []byte{2, 40, 63}, &stream.CompressedFileWriter{}, &stream.CompressedFileReader{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)

			w, err := tt.opener.Create(path)
			require.NoError(t, err)
			require.IsType(t, tt.wantWriter, w)
			_, err = w.Write(tt.values)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			fwd, err := tt.opener.Open(path, int64(len(tt.values)))
			require.NoError(t, err)
			require.IsType(t, tt.wantReader, fwd)
			got, err := io.ReadAll(fwd)
			require.NoError(t, err)
			require.Equal(t, tt.values, got)
			require.NoError(t, fwd.Close())

			ra, err := tt.opener.OpenRandomAccess(path, int64(len(tt.values)))
			require.NoError(t, err)
			require.IsType(t, tt.wantReader, ra)
			_, err = ra.Seek(int64(len(tt.values)-1), io.SeekStart)
			require.NoError(t, err)
			last, err := ra.ReadByte()
			require.NoError(t, err)
			require.Equal(t, tt.values[len(tt.values)-1], last)
			require.NoError(t, ra.Close())
		})
	}
}

func TestNewFactory_EncodingsPerKind(t *testing.T) {
	tests := []struct {
		seq, qual         format.EncodingType
		wantSeq, wantQual Opener
	}{
		{format.EncodingCompressed, format.EncodingBitwise, &CompressedOpener{}, &BitwiseOpener{}},
		{format.EncodingRaw, format.EncodingRaw, &RawOpener{}, &RawOpener{}},
		{format.EncodingBitwise, format.EncodingBitwise, &BitwiseOpener{}, &BitwiseOpener{}},
	}

	for _, tt := range tests {
		t.Run(tt.seq.String()+"/"+tt.qual.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SequenceEncoding = tt.seq
			cfg.QualityEncoding = tt.qual

			f, err := NewFactory(cfg)
			require.NoError(t, err)

			assert.IsType(t, &RawOpener{}, f.Label())
			assert.IsType(t, tt.wantSeq, f.Sequence())
			assert.IsType(t, tt.wantQual, f.Quality())
			assert.Equal(t, tt.seq, f.Sequence().Encoding())
			assert.Equal(t, tt.qual, f.Quality().Encoding())

			for kind, want := range map[format.DataKind]Opener{
				format.KindLabel:    f.Label(),
				format.KindSequence: f.Sequence(),
				format.KindQuality:  f.Quality(),
			} {
				got, err := f.Opener(kind)
				require.NoError(t, err)
				assert.Same(t, want, got)
			}
		})
	}
}

func TestNewFactory_QualityDomains(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QualityEncoding = format.EncodingBitwise
	cfg.MaxQuality = 40
	cfg.ExtendedQuality = true

	f, err := NewFactory(cfg)
	require.NoError(t, err)
	require.Equal(t, 42, f.Quality().(*BitwiseOpener).Range())

	cfg.QualityEncoding = format.EncodingCompressed
	f, err = NewFactory(cfg)
	require.NoError(t, err)

	q := f.Quality().(*CompressedOpener)
	require.Equal(t, 40, q.MaxValue())
	require.True(t, q.Extended())

	cfg.SequenceEncoding = format.EncodingCompressed
	cfg.AlphabetSize = 4
	f, err = NewFactory(cfg)
	require.NoError(t, err)
	require.Equal(t, 3, f.Sequence().(*CompressedOpener).MaxValue())
}

func TestNewFactory_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown sequence encoding", func(c *Config) { c.SequenceEncoding = 0 }},
		{"unknown quality encoding", func(c *Config) { c.QualityEncoding = 9 }},
		{"empty alphabet", func(c *Config) { c.AlphabetSize = 0 }},
		{"alphabet too large", func(c *Config) { c.AlphabetSize = 257 }},
		{"negative quality", func(c *Config) { c.MaxQuality = -1 }},
		{"quality too large", func(c *Config) { c.MaxQuality = 256 }},
		{"extended quality too large", func(c *Config) {
			c.MaxQuality = 255
			c.ExtendedQuality = true
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			_, err := NewFactory(cfg)
			require.ErrorIs(t, err, errs.ErrInvalidConfig)
		})
	}

	_, err := NewFactory(DefaultConfig(), WithFS(nil))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	f, err := NewFactory(DefaultConfig())
	require.NoError(t, err)
	_, err = f.Opener(format.DataKind(7))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestNewFactory_NoIOUntilOpen(t *testing.T) {
	fsys := &countingFS{Real: fs.NewReal()}
	path := filepath.Join(t.TempDir(), "reads.seq")

	cfg := DefaultConfig()
	cfg.ByteOrder = endian.GetBigEndianEngine()

	f, err := NewFactory(cfg, WithFS(fsys))
	require.NoError(t, err)
	require.Empty(t, fsys.opened)
	require.Empty(t, fsys.created)

	w, err := f.Sequence().Create(path)
	require.NoError(t, err)
	_, err = w.Write([]byte{1})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, []string{path}, fsys.created)

	_, err = f.Sequence().Open(filepath.Join(t.TempDir(), "missing"), 1)
	require.Error(t, err)
	require.Len(t, fsys.opened, 1)
}

func TestFactory_OpenErrorReturnsNilStream(t *testing.T) {
	f, err := NewFactory(DefaultConfig())
	require.NoError(t, err)

	for _, opener := range []Opener{f.Label(), f.Sequence(), f.Quality()} {
		s, err := opener.Open(filepath.Join(t.TempDir(), "missing"), 1)
		require.Error(t, err)
		require.Nil(t, s)
	}
}

func TestOpener_ByteLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlphabetSize = 128

	f, err := NewFactory(cfg)
	require.NoError(t, err)

	const n = 10*(1<<31) + 9000

	size, err := f.Sequence().ByteLength(n)
	require.NoError(t, err)
	require.Equal(t, int64(18_790_489_816), size)

	size, err = f.Label().ByteLength(n)
	require.NoError(t, err)
	require.Equal(t, int64(n), size)

	cfg.QualityEncoding = format.EncodingCompressed
	cfg.MaxQuality = 127
	f, err = NewFactory(cfg)
	require.NoError(t, err)

	size, err = f.Quality().ByteLength(n)
	require.NoError(t, err)
	require.Equal(t, int64(19_088_751_544), size)

	_, err = f.Label().ByteLength(-1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

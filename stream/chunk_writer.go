package stream

import (
	"fmt"

	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/packed"
)

// chunkWriter packs values with a layout and appends complete chunks to a file.
// The last partial chunk is held back until Close pads and writes it.
type chunkWriter struct {
	fileSink
	layout   packed.Layout
	engine   endian.EndianEngine
	pending  [packed.BitwiseChunkValues]byte
	npending int
	perChunk int
	words    []uint64
	written  int64
}

func newChunkWriter(f fs.File, layout packed.Layout) chunkWriter {
	return chunkWriter{
		fileSink: newFileSink(f),
		layout:   layout,
		engine:   layout.ByteOrder(),
		perChunk: layout.ValuesPerChunk(),
		words:    make([]uint64, layout.WordsPerChunk()),
	}
}

// Layout returns the chunk layout written by the writer.
func (w *chunkWriter) Layout() packed.Layout {
	return w.layout
}

// Write packs the values of p. Either every value is accepted or, when any lies
// outside the layout's domain, none is and errs.ErrValueOutOfRange is returned.
func (w *chunkWriter) Write(p []byte) (int, error) {
	if err := w.usable(); err != nil {
		return 0, err
	}

	for i, v := range p {
		if _, ok := w.layout.Normalize(v); !ok {
			return 0, fmt.Errorf("%w: value %d at offset %d, range %d",
				errs.ErrValueOutOfRange, v, i, w.layout.Range())
		}
	}

	for _, v := range p {
		w.pending[w.npending], _ = w.layout.Normalize(v)
		w.npending++

		if w.npending == w.perChunk {
			w.emit(w.pending[:w.perChunk])
			w.npending = 0

			if err := w.drainIfFull(); err != nil {
				return 0, err
			}
		}
	}
	w.written += int64(len(p))

	return len(p), nil
}

func (w *chunkWriter) emit(values []byte) {
	w.layout.PackChunk(w.words, values)
	endian.PutWords(w.engine, w.staging.Extend(len(w.words)*endian.WordSize), w.words)
}

// Flush writes every complete chunk received so far and syncs the file.
// A trailing partial chunk stays buffered, so flushing never changes the final bytes.
func (w *chunkWriter) Flush() error {
	if err := w.usable(); err != nil {
		return err
	}

	return w.sync()
}

// Close pads and writes the partial chunk, syncs and closes the file.
// Calling Close again returns errs.ErrClosed.
func (w *chunkWriter) Close() error {
	if !w.closed && w.err == nil && w.npending > 0 {
		w.emit(w.pending[:w.npending])
		w.npending = 0
	}

	return w.close()
}

// ValuesWritten returns the number of values accepted so far.
func (w *chunkWriter) ValuesWritten() int64 {
	return w.written
}

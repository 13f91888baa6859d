package stream

import (
	"fmt"

	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/fs"
	"github.com/arloliu/seqpack/internal/pool"
)

// fileSink stages serialized bytes and writes them to a file in large blocks.
//
// The first I/O error is kept: it is returned by the failing call and by every later
// write or flush. close releases the file even when an error is pending.
type fileSink struct {
	f       fs.File
	staging *pool.ByteBuffer
	err     error
	closed  bool
}

func newFileSink(f fs.File) fileSink {
	return fileSink{f: f, staging: pool.GetStagingBuffer()}
}

// usable reports the error that prevents further writes, if any.
func (s *fileSink) usable() error {
	if s.closed {
		return errs.ErrClosed
	}

	return s.err
}

// drainIfFull writes the staged bytes once they reach the staging threshold.
func (s *fileSink) drainIfFull() error {
	if s.staging.Len() < pool.StagingBufferDefaultSize {
		return nil
	}

	return s.drain()
}

func (s *fileSink) drain() error {
	if s.staging.Len() == 0 {
		return nil
	}

	if _, err := s.staging.WriteTo(s.f); err != nil {
		s.err = fmt.Errorf("write packed chunks: %w", err)
		return s.err
	}
	s.staging.Reset()

	return nil
}

func (s *fileSink) sync() error {
	if err := s.drain(); err != nil {
		return err
	}

	if err := s.f.Sync(); err != nil {
		s.err = fmt.Errorf("sync packed file: %w", err)
		return s.err
	}

	return nil
}

// close syncs pending bytes unless an error is pending, then releases the file.
func (s *fileSink) close() error {
	if s.closed {
		return errs.ErrClosed
	}
	s.closed = true

	if s.err == nil {
		_ = s.sync()
	}

	closeErr := s.f.Close()

	pool.PutStagingBuffer(s.staging)
	s.staging = nil

	if s.err != nil {
		return s.err
	}
	if closeErr != nil {
		return fmt.Errorf("close packed file: %w", closeErr)
	}

	return nil
}

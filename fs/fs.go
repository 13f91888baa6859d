// Package fs provides the filesystem abstraction used by the packed file codecs.
//
// The main types are:
//   - [FS]: interface for the filesystem operations the codecs need
//   - [File]: interface for open files (satisfied by [os.File])
//   - [Real]: production implementation using the [os] package
//
// Streams accept a [File] rather than a path so tests can substitute files that fail
// on demand, and so callers may hand over descriptors they opened themselves:
//
//	fsys := fs.NewReal()
//	f, err := fsys.Create("reads.seq")
//	if err != nil {
//	    return err
//	}
//	w, err := stream.NewBitwiseFileWriter(f, 5)
package fs

import (
	"io"
	"os"
)

// File represents an open file descriptor.
//
// This interface is satisfied by [os.File]. It embeds [io.ReadWriteCloser] and
// [io.Seeker], so it works with every io helper of the standard library.
type File interface {
	io.ReadWriteCloser
	io.Seeker

	// Stat returns the [os.FileInfo] for this file. See [os.File.Stat].
	Stat() (os.FileInfo, error)

	// Sync commits the file's contents to disk. See [os.File.Sync].
	Sync() error
}

// FS defines the filesystem operations used by seqpack.
//
// All methods mirror their [os] package equivalents.
type FS interface {
	// Open opens a file for reading. See [os.Open].
	Open(path string) (File, error)

	// Create creates or truncates a file for writing. See [os.Create].
	Create(path string) (File, error)

	// OpenFile opens a file with specified flags and permissions. See [os.OpenFile].
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// Stat returns file info. See [os.Stat].
	Stat(path string) (os.FileInfo, error)

	// WriteFileAtomic writes the content of r to path atomically.
	// Uses a temp file + rename so readers never observe a partially written file.
	WriteFileAtomic(path string, r io.Reader) error

	// Remove deletes a file or empty directory. See [os.Remove].
	Remove(path string) error
}

// Compile-time interface checks.
var (
	_ File = (*os.File)(nil)
	_ FS   = (*Real)(nil)
)

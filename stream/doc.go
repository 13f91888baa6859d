// Package stream implements file-backed streaming codecs for packed values.
//
// Writers accept raw values through io.Writer, pack them chunk by chunk and write the
// chunks to a file. Readers unpack the same layout and expose forward access
// (io.Reader, io.ByteReader) and, when opened with WithSeekable, random access by
// element position (io.Seeker).
//
// The bytes written for a value sequence do not depend on how the values are split
// into Write calls or where Flush is called, and equal the DumpPacked output of the
// matching in-memory array:
//
//	w, err := stream.CreateBitwiseFile(fsys, "reads.seq", 5)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if _, err := w.Write(codes); err != nil {
//	    return err
//	}
//
// Files carry no header. Readers are told the value domain and element count out of
// band; UnknownLength derives the count from the file size.
//
// # Thread Safety
//
// Writers and readers are not safe for concurrent use. A writer and a forward reader
// may work on the same growing file when the reader is given the logical element
// count, since only complete chunks are visible after Flush.
package stream

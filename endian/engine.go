// Package endian provides the byte order used to serialize packed 64-bit words.
//
// Every packed layout in seqpack stores its chunks as a run of 64-bit words. The byte
// order of those words is part of the on-disk format, so writers, readers and in-memory
// dumps must agree on the same EndianEngine. Little-endian is the default:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendWords(engine, buf, words)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/arloliu/seqpack/errs"
)

// WordSize is the size in bytes of one serialized packed word.
const WordSize = 8

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ParseEngine returns the engine named by s ("little" or "big", case-insensitive).
// An empty string selects little-endian.
func ParseEngine(s string) (EndianEngine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: unknown byte order %q", errs.ErrInvalidConfig, s)
	}
}

// Name returns "little" or "big" for the engine.
func Name(engine EndianEngine) string {
	if engine == EndianEngine(binary.BigEndian) {
		return "big"
	}

	return "little"
}

// AppendWords appends the serialized form of words to dst and returns the extended slice.
func AppendWords(engine EndianEngine, dst []byte, words []uint64) []byte {
	for _, w := range words {
		dst = engine.AppendUint64(dst, w)
	}

	return dst
}

// PutWords serializes words into dst, which must hold at least len(words)*WordSize bytes.
func PutWords(engine EndianEngine, dst []byte, words []uint64) {
	for i, w := range words {
		engine.PutUint64(dst[i*WordSize:], w)
	}
}

// ReadWords deserializes len(words) words from src into words.
// src must hold at least len(words)*WordSize bytes.
func ReadWords(engine EndianEngine, words []uint64, src []byte) {
	for i := range words {
		words[i] = engine.Uint64(src[i*WordSize:])
	}
}

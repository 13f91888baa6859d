package packed

import (
	"io"
	"math/rand"
	"testing"
)

func BenchmarkBitwiseArray_SetRange(b *testing.B) {
	const n = 1 << 20
	values := randomCodes(rand.New(rand.NewSource(1)), n, 5)

	arr, err := NewBitwiseArray(n, 5)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(n)
	for b.Loop() {
		if err := arr.SetRange(0, values); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompressedArray_GetRange(b *testing.B) {
	const n = 1 << 20
	values := randomCodes(rand.New(rand.NewSource(1)), n, 42)

	arr, err := NewCompressedArray(n, 40, true)
	if err != nil {
		b.Fatal(err)
	}
	if err := arr.SetRange(0, values); err != nil {
		b.Fatal(err)
	}

	dst := make([]byte, n)

	b.SetBytes(n)
	for b.Loop() {
		if err := arr.GetRange(dst, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBitwiseArray_DumpPacked(b *testing.B) {
	const n = 1 << 20
	values := randomCodes(rand.New(rand.NewSource(1)), n, 128)

	arr, err := NewBitwiseArray(n, 128)
	if err != nil {
		b.Fatal(err)
	}
	if err := arr.SetRange(0, values); err != nil {
		b.Fatal(err)
	}

	b.SetBytes(n)
	for b.Loop() {
		if err := arr.DumpPacked(io.Discard, n); err != nil {
			b.Fatal(err)
		}
	}
}

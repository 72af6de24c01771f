// Package bitflip enumerates every variant of an input that is one
// flipped bit away from it.
//
// Variants are produced in a fixed order: byte positions from first to
// last, and within each byte the least significant bit first. The
// unmodified input is never part of a sequence. Sequences are lazy and
// may be ranged over any number of times, each pass starting over from
// the first variant.
package bitflip

import (
	"bytes"
	"errors"
	"iter"
	"math/bits"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned by Text and ASCIIText when the input
// is not well-formed UTF-8.
var ErrInvalidEncoding = errors.New("bitflip: input is not valid UTF-8")

const (
	asciiBits = 7
	byteBits  = 8
)

// Bytes returns the sequence of all variants of input with exactly one
// bit flipped, eight per byte. The input is copied up front and every
// variant is a fresh allocation, so the caller may keep or modify any
// of them freely.
func Bytes(input []byte) iter.Seq[[]byte] {
	return flipped(input, byteBits)
}

// ASCIIBytes is like Bytes but never touches the high bit of a byte,
// producing seven variants per byte.
func ASCIIBytes(input []byte) iter.Seq[[]byte] {
	return flipped(input, asciiBits)
}

func flipped(input []byte, nbits int) iter.Seq[[]byte] {
	snapshot := bytes.Clone(input)
	return func(yield func([]byte) bool) {
		for pos := range snapshot {
			for bit := 0; bit < nbits; bit++ {
				variant := bytes.Clone(snapshot)
				variant[pos] ^= 1 << bit
				if !yield(variant) {
					return
				}
			}
		}
	}
}

// Text returns the sequence of all single-bit-flip variants of input
// that are themselves well-formed UTF-8. Flips that would break the
// encoding are skipped, so a byte can contribute fewer than eight
// variants. Text fails with ErrInvalidEncoding when the input itself
// is not valid UTF-8.
func Text(input string) (iter.Seq[string], error) {
	return textFlipped(input, byteBits)
}

// ASCIIText is like Text but never touches the high bit of a byte.
func ASCIIText(input string) (iter.Seq[string], error) {
	return textFlipped(input, asciiBits)
}

func textFlipped(input string, nbits int) (iter.Seq[string], error) {
	if !utf8.ValidString(input) {
		return nil, ErrInvalidEncoding
	}
	raw := flipped([]byte(input), nbits)
	seq := func(yield func(string) bool) {
		for variant := range raw {
			if !utf8.Valid(variant) {
				continue
			}
			if !yield(string(variant)) {
				return
			}
		}
	}
	return seq, nil
}

// FlipPosition reports which single bit separates variant from
// original. It returns the byte offset and the bit index within that
// byte, with ok false when the two inputs differ by anything other
// than exactly one bit.
func FlipPosition(original, variant []byte) (pos, bit int, ok bool) {
	if len(original) != len(variant) {
		return 0, 0, false
	}
	pos, bit = -1, 0
	for i := range original {
		d := original[i] ^ variant[i]
		if d == 0 {
			continue
		}
		if pos != -1 || bits.OnesCount8(d) != 1 {
			return 0, 0, false
		}
		pos = i
		bit = bits.TrailingZeros8(d)
	}
	if pos == -1 {
		return 0, 0, false
	}
	return pos, bit, true
}

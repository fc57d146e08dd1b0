package bits

import (
	"errors"
	"fmt"
)

const (
	// RevealMarker is OR-ed into every revealed channel. Bit 4 carries no data, it only keeps the low nibble of a
	// revealed value from being zero so that an all-zero payload still shows up as a dark grey instead of black
	RevealMarker = byte(0b0001_0000)

	coverMask = byte(0b1111_1000)
	low3Mask  = byte(0b0000_0111)
)

var (
	ErrInvalidChannelValue = errors.New("channel value must be in the range [0,255]")
)

// ToBits returns the binary digits of n, most significant first
func ToBits(n byte) (digits [8]byte) {
	for i := range digits {
		digits[i] = (n >> (7 - i)) & 1
	}
	return digits
}

// FromBits is the inverse of ToBits. Any non-zero digit is treated as a 1
func FromBits(digits [8]byte) (n byte) {
	for _, d := range digits {
		n <<= 1
		if d != 0 {
			n |= 1
		}
	}
	return n
}

func Last3BitsValue(n byte) byte {
	return n & low3Mask
}

func Top3Bits(n byte) byte {
	return n >> 5
}

// ExpandTop3 places the 3 bit value v in the 3 most significant bits of a byte and sets RevealMarker.
//
// example
// v 101 (binary)
// result 10110000
func ExpandTop3(v byte) byte {
	return (v&low3Mask)<<5 | RevealMarker
}

// Compose keeps the 5 most significant bits of cover and replaces its 3 least significant bits with the 3 most
// significant bits of hidden.
//
// example
// cover 11010110 - hidden 10110000
// result 11010101
func Compose(cover, hidden byte) byte {
	return cover&coverMask | Top3Bits(hidden)
}

// Channel validates a channel value coming from a wider integer type
func Channel(v int) (byte, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidChannelValue, v)
	}
	return byte(v), nil
}

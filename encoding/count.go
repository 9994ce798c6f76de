package encoding

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/bitfield/errs"
)

// CountWidth returns the minimum bit width representing maxValue:
// floor(log2(maxValue)) + 1, with a minimum of one bit.
func CountWidth(maxValue uint64) int {
	if maxValue == 0 {
		return 1
	}

	return bits.Len64(maxValue)
}

// MaxCount returns the largest value a count flag of the given width can
// store.
func MaxCount(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<width - 1
}

// EncodeCount validates that value fits the flag's width and returns it as
// the stored code. The code is the plain binary representation, left-padded
// with zeros to the width.
//
// Returns errs.ErrCountOverflow when value needs more bits than width;
// values are never silently truncated.
func EncodeCount(value uint64, width int) (uint64, error) {
	if value>>width != 0 {
		return 0, fmt.Errorf("%w: value %d needs %d bits, flag width is %d",
			errs.ErrCountOverflow, value, bits.Len64(value), width)
	}

	return value, nil
}

// DecodeCount maps a stored code back to the count value.
func DecodeCount(code uint64) uint64 {
	return code
}

package format

import (
	"fmt"

	"github.com/arloliu/bitfield/errs"
)

// PrecisionSpec describes a floating-point bit layout: the widths of the
// sign, exponent, and mantissa sections and the exponent bias.
//
// For every supported precision, SignBits + ExponentBits + MantissaBits
// equals the layout's total width and Bias equals 2^(ExponentBits-1) - 1.
type PrecisionSpec struct {
	SignBits     int
	ExponentBits int
	MantissaBits int
	Bias         int
}

// TotalBits returns the total width of the layout in bits.
func (s PrecisionSpec) TotalBits() int {
	return s.SignBits + s.ExponentBits + s.MantissaBits
}

var precisionSpecs = map[Precision]PrecisionSpec{
	PrecisionHalf:   {SignBits: 1, ExponentBits: 5, MantissaBits: 10, Bias: 15},
	PrecisionSingle: {SignBits: 1, ExponentBits: 8, MantissaBits: 23, Bias: 127},
	PrecisionDouble: {SignBits: 1, ExponentBits: 11, MantissaBits: 52, Bias: 1023},
}

// SpecFor returns the bit layout of the given precision.
//
// Returns errs.ErrUnknownPrecision for an unrecognized precision value.
func SpecFor(p Precision) (PrecisionSpec, error) {
	spec, ok := precisionSpecs[p]
	if !ok {
		return PrecisionSpec{}, fmt.Errorf("%w: %d", errs.ErrUnknownPrecision, uint8(p))
	}

	return spec, nil
}

// ParsePrecision resolves a precision name ("half", "single" or "double")
// to its Precision value.
//
// Returns errs.ErrUnknownPrecision for an unrecognized name.
func ParsePrecision(name string) (Precision, error) {
	switch name {
	case "half":
		return PrecisionHalf, nil
	case "single":
		return PrecisionSingle, nil
	case "double":
		return PrecisionDouble, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownPrecision, name)
	}
}

package encoding

import (
	"math"
	"math/bits"

	"github.com/arloliu/bitfield/format"
)

// float64 source layout constants.
const (
	f64ExpBits  = 11
	f64MantBits = 52
	f64Bias     = 1023
	f64ExpMask  = (1 << f64ExpBits) - 1
	f64MantMask = uint64(1)<<f64MantBits - 1
)

// EncodeFloat packs value into the sign/exponent/mantissa layout described
// by spec and returns the bit pattern right-aligned in a uint64.
//
// The encoding follows the usual biased layout:
//
//	sign     = 1 for negative values, including negative zero
//	exponent = true binary exponent + spec.Bias
//	mantissa = fraction bits after the leading "1.", rounded to
//	           spec.MantissaBits (round to nearest, ties away from zero)
//
// Out-of-range magnitudes degrade silently rather than failing:
//
//   - stored exponent ≥ all-ones: the all-ones-exponent infinity sentinel
//   - stored exponent ≤ 0: a denormalized (subnormal) mantissa under an
//     all-zero exponent
//   - below half the smallest subnormal: signed zero
//
// NaN encodes as all-ones exponent with the mantissa's top bit set;
// infinities encode as the infinity sentinel. Round-trip through
// DecodeFloat is exact whenever the value's true mantissa fits
// spec.MantissaBits; the double precision layout round-trips every float64
// bit-exactly.
func EncodeFloat(value float64, spec format.PrecisionSpec) uint64 {
	expBits := spec.ExponentBits
	mantBits := spec.MantissaBits
	maxExp := 1<<expBits - 1
	allOnesExp := uint64(maxExp) << mantBits

	raw := math.Float64bits(value)
	signPart := raw >> 63 << (expBits + mantBits)
	rawExp := int(raw >> f64MantBits & f64ExpMask) //nolint: gosec
	rawMant := raw & f64MantMask

	// NaN and infinity map onto the target's all-ones exponent patterns.
	// NaN payloads are not preserved; the quiet bit alone survives.
	if rawExp == f64ExpMask {
		if rawMant == 0 {
			return signPart | allOnesExp
		}

		return signPart | allOnesExp | uint64(1)<<(mantBits-1)
	}

	if rawExp == 0 && rawMant == 0 {
		return signPart
	}

	// Recover the true exponent e and the 52-bit fraction below the
	// implicit leading one. Subnormal float64 inputs renormalize first.
	var e int
	var frac uint64
	if rawExp == 0 {
		top := bits.Len64(rawMant) - 1
		e = top - (f64Bias - 1) - f64MantBits
		frac = (rawMant ^ uint64(1)<<top) << (f64MantBits - top)
	} else {
		e = rawExp - f64Bias
		frac = rawMant
	}

	storedExp := e + spec.Bias
	if storedExp >= maxExp {
		return signPart | allOnesExp
	}

	if storedExp <= 0 {
		// Underflow: shift the full significand (implicit one included)
		// into the target's subnormal scale, rounding ties away from zero.
		// Oversized shifts flush to zero on their own since Go defines
		// x>>n == 0 for n ≥ 64.
		sig := frac | uint64(1)<<f64MantBits
		rshift := (f64MantBits - mantBits) + (1 - storedExp)
		q := sig >> rshift
		q += sig >> (rshift - 1) & 1
		// A carry past the mantissa lands exactly on the smallest normal:
		// exponent 1, mantissa 0.
		return signPart | q
	}

	// Normal range: round the 52-bit fraction down to mantBits.
	cut := f64MantBits - mantBits
	q := frac >> cut
	if cut > 0 {
		q += frac >> (cut - 1) & 1
	}
	if q == uint64(1)<<mantBits {
		// Rounding carried into the next binade.
		q = 0
		storedExp++
		if storedExp == maxExp {
			return signPart | allOnesExp
		}
	}

	return signPart | uint64(storedExp)<<mantBits | q
}

// DecodeFloat reverses EncodeFloat exactly: it reconstructs
//
//	(-1)^sign * 1.mantissa * 2^(exponent - bias)
//
// for normal codes, maps the all-zero exponent to the subnormal value
// (-1)^sign * 0.mantissa * 2^(1-bias) (or signed zero), and the all-ones
// exponent back to ±Inf or NaN.
func DecodeFloat(code uint64, spec format.PrecisionSpec) float64 {
	expBits := spec.ExponentBits
	mantBits := spec.MantissaBits
	maxExp := uint64(1)<<expBits - 1

	mant := code & (uint64(1)<<mantBits - 1)
	exp := code >> mantBits & maxExp
	negative := code>>(expBits+mantBits)&1 == 1

	var value float64
	switch {
	case exp == maxExp:
		if mant == 0 {
			value = math.Inf(1)
		} else {
			value = math.NaN()
		}
	case exp == 0:
		value = math.Ldexp(float64(mant), 1-spec.Bias-mantBits)
	default:
		value = math.Ldexp(float64(mant|uint64(1)<<mantBits), int(exp)-spec.Bias-mantBits) //nolint: gosec
	}

	if negative {
		value = -value
	}

	return value
}

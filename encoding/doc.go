// Package encoding provides the low-level bit codecs for every flag kind in a
// bitfield registry.
//
// Each codec translates between a domain value (bool, case index, count,
// float64) and the raw code stored in a flag's bit span. Codecs are pure
// functions over uint64 codes; the field package composes them into whole-field
// encoders and decoders, and the registry package uses the width helpers when
// flags are declared.
//
// # Usage Guidance
//
// This package is designed for advanced use cases and custom tooling.
// Most users should use the high-level registry and field packages instead,
// which provide:
//   - Declarative flag registration with automatic bit allocation
//   - Whole-record encoding across many flags at once
//   - Name-based decoding and lookup
//
// Use this package directly only when:
//   - Implementing custom storage that embeds individual flag codes
//   - Inspecting or patching raw codes without a full registry
//   - Understanding the exact bit-level semantics of a flag kind
//
// For typical use cases, see: github.com/arloliu/bitfield
//
// # Binary Flags
//
// A plain binary flag stores one bit:
//
//	code := encoding.EncodeBinary(true)   // 0b1
//	value := encoding.DecodeBinary(code)  // true
//
// The NA variant widens to two bits so a record can distinguish false from
// not-observed. One code is reserved as the missing sentinel:
//
//	code := encoding.EncodeBinaryNA(false, true, encoding.DefaultNASentinel) // 0b10
//	value, missing := encoding.DecodeBinaryNA(code, encoding.DefaultNASentinel)
//
// Valid sentinels are 0b10 (default) and 0b11; both leave the plain true and
// false codes untouched so a binary flag can be widened without re-encoding
// existing data.
//
// # Case Flags
//
// A case flag stores the index of the matching case, or a reserved no-case
// code when nothing matched. The width covers caseCount+1 states:
//
//	width := encoding.CaseWidth(3)           // 2 bits for 3 cases + no-case
//	code := encoding.EncodeCase(2, width)    // 0b10
//	index := encoding.DecodeCase(code, 3)    // 2
//	none := encoding.EncodeCase(encoding.CaseNone, width) // 0b11
//
// ResolveCase collapses a per-record outcome vector into a single index and
// implements the conflict policy (first-wins, last-wins, strict).
//
// # Count Flags
//
// A count flag stores a small non-negative integer verbatim:
//
//	width := encoding.CountWidth(7)          // 3 bits
//	code, err := encoding.EncodeCount(5, width)
//	value := encoding.DecodeCount(code)      // 5
//
// EncodeCount rejects values that do not fit the width with
// errs.ErrCountOverflow. Width is chosen once from the largest declared
// maximum, so all records in a field agree on the span.
//
// # Numeric Flags
//
// A numeric flag stores an IEEE-754 style floating-point code in one of three
// precisions:
//
//	Half:   1 sign + 5 exponent + 10 mantissa = 16 bits (bias 15)
//	Single: 1 sign + 8 exponent + 23 mantissa = 32 bits (bias 127)
//	Double: 1 sign + 11 exponent + 52 mantissa = 64 bits (bias 1023)
//
// The code layout is sign, then exponent, then mantissa, most significant
// first:
//
//	half 3.625:  0 10000 1101000000
//	             ↑ ↑     ↑
//	             + exp 1 mantissa 0.8125
//
// EncodeFloat rounds to nearest with ties away from zero, saturates overflow
// to the all-ones-exponent infinity code, flushes underflow through the
// subnormal range to signed zero, and normalizes NaN to a quiet NaN code.
// Double precision is a bit-exact passthrough of math.Float64bits, so
// round-tripping a float64 through a double flag never loses information.
//
//	spec, _ := format.SpecFor(format.PrecisionHalf)
//	code := encoding.EncodeFloat(3.625, spec)   // 0x4340
//	value := encoding.DecodeFloat(code, spec)   // 3.625
//
// # String Payloads
//
// Registry blobs carry flag names and descriptions as length-prefixed string
// payloads:
//
//	[Count: uint16] [Len1: uint16][Str1] [Len2: uint16][Str2] ...
//
// EncodeStrings and DecodeStrings implement the payload codec;
// VerifyNameHashes cross-checks decoded names against the xxHash64 name IDs
// stored in the fixed-size flag entries.
//
// # Bit Strings
//
// AppendBits renders a code as a fixed-width ASCII bit string, most
// significant bit first. The field decoder uses it to build human-readable
// dumps like "0|10|101|0100001101000000".
//
// # Thread Safety
//
// All functions in this package are pure and safe for concurrent use.
package encoding

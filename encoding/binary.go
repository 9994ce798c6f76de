package encoding

const (
	// BinaryWidth is the bit width of a plain binary flag.
	BinaryWidth = 1

	// BinaryNAWidth is the bit width of a binary flag that reserves an NA
	// sentinel. Two bits are needed to keep the sentinel distinct from both
	// the false (0) and true (1) codes.
	BinaryNAWidth = 2

	// DefaultNASentinel is the default "not tested" code of an NA-carrying
	// binary flag.
	DefaultNASentinel = 0b10
)

// IsValidNASentinel reports whether code can serve as the NA sentinel of a
// binary flag: it must fit BinaryNAWidth and differ from the false and true
// codes, which leaves 0b10 and 0b11.
func IsValidNASentinel(code uint64) bool {
	return code == 0b10 || code == 0b11
}

// EncodeBinary returns the stored code of a boolean test outcome.
func EncodeBinary(value bool) uint64 {
	if value {
		return 1
	}

	return 0
}

// DecodeBinary maps a stored code back to the boolean test outcome.
func DecodeBinary(code uint64) bool {
	return code != 0
}

// EncodeBinaryNA returns the stored code of a boolean test outcome that may
// be missing. A missing record emits the sentinel instead of evaluating the
// outcome.
func EncodeBinaryNA(value, missing bool, sentinel uint64) uint64 {
	if missing {
		return sentinel
	}

	return EncodeBinary(value)
}

// DecodeBinaryNA maps a stored code back to the boolean outcome and its
// missing mark. Any non-sentinel code decodes its low bit as the outcome.
func DecodeBinaryNA(code uint64, sentinel uint64) (value bool, missing bool) {
	if code == sentinel {
		return false, true
	}

	return code&1 == 1, false
}

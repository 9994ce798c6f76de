package format

type (
	FlagKind        uint8
	Precision       uint8
	CaseMode        uint8
	CompressionType uint8
)

const (
	KindBinary  FlagKind = 0x1 // KindBinary represents a boolean test outcome flag.
	KindCase    FlagKind = 0x2 // KindCase represents an enumerated case flag.
	KindCount   FlagKind = 0x3 // KindCount represents a bounded non-negative integer flag.
	KindNumeric FlagKind = 0x4 // KindNumeric represents a floating-point value flag.

	PrecisionHalf   Precision = 0x1 // PrecisionHalf represents the 16-bit 1/5/10 layout, bias 15.
	PrecisionSingle Precision = 0x2 // PrecisionSingle represents the 32-bit 1/8/23 layout, bias 127.
	PrecisionDouble Precision = 0x3 // PrecisionDouble represents the 64-bit 1/11/52 layout, bias 1023.

	CaseFirstWins CaseMode = 0x1 // CaseFirstWins encodes the first matching case.
	CaseLastWins  CaseMode = 0x2 // CaseLastWins encodes the last matching case.
	CaseStrict    CaseMode = 0x3 // CaseStrict rejects records matching more than one case.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k FlagKind) String() string {
	switch k {
	case KindBinary:
		return "Binary"
	case KindCase:
		return "Case"
	case KindCount:
		return "Count"
	case KindNumeric:
		return "Numeric"
	default:
		return "Unknown"
	}
}

func (p Precision) String() string {
	switch p {
	case PrecisionHalf:
		return "half"
	case PrecisionSingle:
		return "single"
	case PrecisionDouble:
		return "double"
	default:
		return "unknown"
	}
}

func (m CaseMode) String() string {
	switch m {
	case CaseFirstWins:
		return "FirstWins"
	case CaseLastWins:
		return "LastWins"
	case CaseStrict:
		return "Strict"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

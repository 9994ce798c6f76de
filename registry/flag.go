package registry

import (
	"github.com/arloliu/bitfield/format"
	"github.com/arloliu/bitfield/section"
)

// Flag describes one named bit range inside a registry layout.
//
// Flags are created through the Registry Add methods and are read-only
// afterwards. The kind-specific accessors (NASentinel, CaseCount, CaseMode,
// MaxCount, Precision) return the zero value for flags of any other kind.
type Flag struct {
	name        string
	description string
	kind        format.FlagKind
	start       int
	width       int

	naSentinel uint64           // binary flags, 0 when the flag carries no NA code
	caseCount  int              // case flags
	caseMode   format.CaseMode  // case flags
	maxValue   uint64           // count flags, the declared maximum
	precision  format.Precision // numeric flags
}

// Name returns the flag's name, unique within its registry.
func (f *Flag) Name() string { return f.name }

// Description returns the flag's description, empty unless set with
// WithDescription.
func (f *Flag) Description() string { return f.description }

// Kind returns the flag's kind.
func (f *Flag) Kind() format.FlagKind { return f.kind }

// Start returns the flag's first bit position, counted from the most
// significant side of the field.
func (f *Flag) Start() int { return f.start }

// Width returns the flag's bit width.
func (f *Flag) Width() int { return f.width }

// End returns the bit position just past the flag's range.
func (f *Flag) End() int { return f.start + f.width }

// HasNA reports whether a binary flag reserves a "not tested" sentinel.
func (f *Flag) HasNA() bool {
	return f.kind == format.KindBinary && f.naSentinel != 0
}

// NASentinel returns the sentinel code of an NA-carrying binary flag.
func (f *Flag) NASentinel() uint64 { return f.naSentinel }

// CaseCount returns the number of cases of a case flag.
func (f *Flag) CaseCount() int { return f.caseCount }

// CaseMode returns the multi-match resolution mode of a case flag.
func (f *Flag) CaseMode() format.CaseMode { return f.caseMode }

// MaxCount returns the declared maximum of a count flag. Encoding a value
// above it fails even when the value still fits the flag's width.
func (f *Flag) MaxCount() uint64 { return f.maxValue }

// Precision returns the floating-point layout of a numeric flag.
func (f *Flag) Precision() format.Precision { return f.precision }

// param returns the kind-specific parameter stored in the flag's marshalled
// entry and folded into the layout fingerprint.
func (f *Flag) param() uint64 {
	switch f.kind {
	case format.KindBinary:
		return f.naSentinel
	case format.KindCase:
		return uint64(section.NewCaseParam(f.caseCount, f.caseMode))
	case format.KindCount:
		return f.maxValue
	case format.KindNumeric:
		return uint64(f.precision)
	default:
		return 0
	}
}

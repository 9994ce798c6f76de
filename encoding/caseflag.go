package encoding

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
)

// CaseNone is the decoded index reported when no case matched a record.
//
// It is deliberately out of the valid index range [0, caseCount) so it can
// never be confused with case 0.
const CaseNone = -1

// CaseWidth returns the bit width of a case flag with caseCount cases: the
// smallest width whose highest representable value, the reserved "no case"
// code, stays distinct from every case index.
//
// A width of ceil(log2(caseCount)) alone would alias the no-case code with
// the last case whenever caseCount is a power of two, so the width covers
// caseCount+1 codes.
func CaseWidth(caseCount int) int {
	return bits.Len(uint(caseCount))
}

// NoCaseCode returns the reserved "no case" code for the given width: the
// highest representable value.
func NoCaseCode(width int) uint64 {
	return uint64(1)<<width - 1
}

// ResolveCase reduces one record's predicate outcomes, in declaration
// order, to a single case index under the given mode:
//
//   - format.CaseFirstWins (and exclusive flags): the first true predicate
//     wins. This is also the fallback for an unset mode.
//   - format.CaseLastWins: the last true predicate wins.
//   - format.CaseStrict: more than one true predicate is
//     errs.ErrCaseConflict.
//
// Returns CaseNone when no predicate is true.
func ResolveCase(outcomes []bool, mode format.CaseMode) (int, error) {
	matched := CaseNone
	for i, ok := range outcomes {
		if !ok {
			continue
		}

		switch mode {
		case format.CaseLastWins:
			matched = i
		case format.CaseStrict:
			if matched != CaseNone {
				return 0, fmt.Errorf("%w: cases %d and %d", errs.ErrCaseConflict, matched, i)
			}
			matched = i
		default:
			return i, nil
		}
	}

	return matched, nil
}

// EncodeCase returns the stored code of a resolved case index. A negative
// index (CaseNone) emits the reserved no-case code of the flag's width.
func EncodeCase(index int, width int) uint64 {
	if index < 0 {
		return NoCaseCode(width)
	}

	return uint64(index)
}

// DecodeCase maps a stored code back to a case index. Any code outside
// [0, caseCount), including the reserved no-case code, decodes to CaseNone.
func DecodeCase(code uint64, caseCount int) int {
	if code >= uint64(caseCount) { //nolint: gosec
		return CaseNone
	}

	return int(code)
}

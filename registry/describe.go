package registry

import (
	"fmt"
	"strings"

	"github.com/arloliu/bitfield/format"
)

// Describe returns a human-readable report of the layout: the registry
// name and description, one line per flag in bit order with its bit
// range, kind, and description, and the total width.
//
// Example output:
//
//	registry "sensor_qa": per-record quality flags
//	  [ 0, 1) missing    Binary
//	  [ 1, 3) quality    Case(3, FirstWins) pipeline quality tier
//	  [ 3, 6) run_length Count(max 7)
//	  [ 6,22) value      Numeric(half)
//	total width: 22 bits
//
// Describe is read-only and works on frozen registries.
func (r *Registry) Describe() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("registry %q", r.name))
	if r.description != "" {
		sb.WriteString(": ")
		sb.WriteString(r.description)
	}
	sb.WriteByte('\n')

	nameWidth := 0
	kindWidth := 0
	kinds := make([]string, len(r.flags))
	for i, f := range r.flags {
		kinds[i] = describeKind(f)
		nameWidth = max(nameWidth, len(f.name))
		kindWidth = max(kindWidth, len(kinds[i]))
	}

	for i, f := range r.flags {
		if f.description == "" {
			sb.WriteString(fmt.Sprintf("  [%2d,%2d) %-*s %s\n",
				f.start, f.End(), nameWidth, f.name, kinds[i]))
			continue
		}
		sb.WriteString(fmt.Sprintf("  [%2d,%2d) %-*s %-*s %s\n",
			f.start, f.End(), nameWidth, f.name, kindWidth, kinds[i], f.description))
	}

	sb.WriteString(fmt.Sprintf("total width: %d bits\n", r.totalWidth))

	return sb.String()
}

// describeKind renders a flag's kind with its codec parameters.
func describeKind(f *Flag) string {
	switch f.kind {
	case format.KindBinary:
		if f.HasNA() {
			return fmt.Sprintf("Binary(NA=0b%02b)", f.naSentinel)
		}

		return "Binary"
	case format.KindCase:
		return fmt.Sprintf("Case(%d, %s)", f.caseCount, f.caseMode)
	case format.KindCount:
		return fmt.Sprintf("Count(max %d)", f.maxValue)
	case format.KindNumeric:
		return fmt.Sprintf("Numeric(%s)", f.precision)
	default:
		return f.kind.String()
	}
}

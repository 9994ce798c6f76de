package registry

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/arloliu/bitfield/encoding"
	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
	"github.com/arloliu/bitfield/internal/hash"
	"github.com/arloliu/bitfield/section"
)

// MaxWidth is the widest field layout a registry can describe. Encoded
// fields are single uint64 values, so a layout never exceeds 64 bits.
const MaxWidth = 64

// Registry names flags and fixes their bit layout within a field.
//
// A registry starts empty and grows one flag per Add call. Each flag's
// width follows from its kind; its position defaults to the end of the
// layout and can be pinned with WithPosition. Constructing an encoder or
// decoder freezes the registry, so fields encoded against the layout stay
// decodable.
//
// A Registry is not safe for concurrent mutation. Once frozen it is
// read-only and safe to share across goroutines.
type Registry struct {
	name        string
	description string
	flags       []*Flag // ordered by starting bit
	byName      map[string]*Flag
	totalWidth  int
	frozen      bool
}

// New creates an empty registry with the given name and description.
func New(name, description string) *Registry {
	return &Registry{
		name:        name,
		description: description,
		byName:      make(map[string]*Flag),
	}
}

// Name returns the registry name.
func (r *Registry) Name() string { return r.name }

// Description returns the registry description.
func (r *Registry) Description() string { return r.description }

// TotalWidth returns the number of bits the layout occupies: the end of
// the highest-placed flag, zero for an empty registry.
func (r *Registry) TotalWidth() int { return r.totalWidth }

// Len returns the number of registered flags.
func (r *Registry) Len() int { return len(r.flags) }

// Flag returns the named flag, or false when no flag has that name.
func (r *Registry) Flag(name string) (*Flag, bool) {
	f, ok := r.byName[name]

	return f, ok
}

// FlagAt returns the flag at index i in bit order, or nil when i is out
// of range.
func (r *Registry) FlagAt(i int) *Flag {
	if i < 0 || i >= len(r.flags) {
		return nil
	}

	return r.flags[i]
}

// All iterates the flags in bit order: ascending starting position. With
// default placement this is declaration order; WithPosition can move a
// flag ahead of earlier declarations.
func (r *Registry) All() iter.Seq[*Flag] {
	return func(yield func(*Flag) bool) {
		for _, f := range r.flags {
			if !yield(f) {
				return
			}
		}
	}
}

// Frozen reports whether the registry has been frozen by an encoder or
// decoder.
func (r *Registry) Frozen() bool { return r.frozen }

// Freeze marks the registry immutable. NewEncoder and NewDecoder freeze
// the registry they are given; every later Add call fails with
// errs.ErrRegistryFrozen.
func (r *Registry) Freeze() { r.frozen = true }

// Fingerprint returns the 64-bit layout fingerprint: an order-sensitive
// hash over the registry name and every flag's name, kind, position,
// width, and codec parameter, in bit order.
//
// Descriptions do not contribute, so two registries that place and encode
// flags identically fingerprint identically. The fingerprint is stamped
// into encoded fields and marshalled blobs to catch layout drift.
func (r *Registry) Fingerprint() uint64 {
	digest := hash.NewDigest()
	digest.WriteString(r.name)
	for _, f := range r.flags {
		digest.WriteString(f.name)
		digest.WriteUint64(uint64(f.kind))
		digest.WriteUint64(uint64(f.start))
		digest.WriteUint64(uint64(f.width))
		digest.WriteUint64(f.param())
	}

	return digest.Sum64()
}

// AddBinary registers a one-bit flag recording a boolean test outcome.
func (r *Registry) AddBinary(name string, opts ...FlagOption) error {
	cfg, err := applyFlagOptions(opts)
	if err != nil {
		return err
	}

	return r.addFlag(&Flag{
		name:  name,
		kind:  format.KindBinary,
		width: encoding.BinaryWidth,
	}, cfg)
}

// AddBinaryNA registers a two-bit binary flag that reserves a sentinel
// code for records where the test never ran. The sentinel defaults to
// 0b10; WithNASentinel(0b11) selects the alternative.
func (r *Registry) AddBinaryNA(name string, opts ...FlagOption) error {
	cfg, err := applyFlagOptions(opts)
	if err != nil {
		return err
	}

	return r.addFlag(&Flag{
		name:       name,
		kind:       format.KindBinary,
		width:      encoding.BinaryNAWidth,
		naSentinel: cfg.naSentinel,
	}, cfg)
}

// AddCases registers an enumerated flag over caseCount case predicates.
// The width covers every case index plus the reserved no-case code, so a
// power-of-two caseCount needs one more bit than its indexes alone.
//
// WithCaseMode picks how records matching more than one predicate
// resolve; the default is format.CaseFirstWins.
func (r *Registry) AddCases(name string, caseCount int, opts ...FlagOption) error {
	cfg, err := applyFlagOptions(opts)
	if err != nil {
		return err
	}

	if caseCount < 1 || caseCount > section.MaxCaseCount {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCaseCount, caseCount)
	}

	return r.addFlag(&Flag{
		name:      name,
		kind:      format.KindCase,
		width:     encoding.CaseWidth(caseCount),
		caseCount: caseCount,
		caseMode:  cfg.caseMode,
	}, cfg)
}

// AddCount registers a bounded tally flag sized by a full pass over the
// raw column: the observed maximum becomes the declared maximum and fixes
// the width. The column must not be empty.
func (r *Registry) AddCount(name string, column []uint64, opts ...FlagOption) error {
	if len(column) == 0 {
		return fmt.Errorf("%w: empty count column for flag %q", errs.ErrInvalidRecordCount, name)
	}

	maxValue := uint64(0)
	for _, v := range column {
		if v > maxValue {
			maxValue = v
		}
	}

	return r.AddCountMax(name, maxValue, opts...)
}

// AddCountMax registers a bounded tally flag with an explicit declared
// maximum, occupying the minimum width covering it (at least one bit).
// Encoding a value above the declared maximum fails even when the value
// still fits the width.
//
// The marshalled form stores the declared maximum in a 32-bit entry
// parameter, so maxValue is capped at math.MaxUint32.
func (r *Registry) AddCountMax(name string, maxValue uint64, opts ...FlagOption) error {
	cfg, err := applyFlagOptions(opts)
	if err != nil {
		return err
	}

	if maxValue > math.MaxUint32 {
		return fmt.Errorf("%w: declared maximum %d exceeds %d", errs.ErrCountOverflow, maxValue, uint64(math.MaxUint32))
	}

	return r.addFlag(&Flag{
		name:     name,
		kind:     format.KindCount,
		width:    encoding.CountWidth(maxValue),
		maxValue: maxValue,
	}, cfg)
}

// AddNumeric registers a floating-point flag with the given bit layout:
// 16 bits for half, 32 for single, 64 for double.
func (r *Registry) AddNumeric(name string, precision format.Precision, opts ...FlagOption) error {
	cfg, err := applyFlagOptions(opts)
	if err != nil {
		return err
	}

	spec, err := format.SpecFor(precision)
	if err != nil {
		return err
	}

	return r.addFlag(&Flag{
		name:      name,
		kind:      format.KindNumeric,
		width:     spec.TotalBits(),
		precision: precision,
	}, cfg)
}

// addFlag validates the fully-built flag against the current layout and
// registers it. All validation happens before any mutation, so a failed
// Add leaves the registry unchanged.
func (r *Registry) addFlag(f *Flag, cfg *flagConfig) error {
	if r.frozen {
		return fmt.Errorf("%w: cannot add flag %q", errs.ErrRegistryFrozen, f.name)
	}
	if f.name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalidFlagName)
	}
	if len(f.name) > encoding.MaxStringLength {
		return fmt.Errorf("%w: flag name is %d bytes", errs.ErrStringTooLong, len(f.name))
	}
	if _, exists := r.byName[f.name]; exists {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateFlagName, f.name)
	}

	f.description = cfg.description
	f.start = cfg.position
	if f.start < 0 {
		f.start = r.totalWidth
	}

	if f.End() > MaxWidth {
		return fmt.Errorf("%w: flag %q ends at bit %d", errs.ErrFieldWidthExceeded, f.name, f.End())
	}
	for _, existing := range r.flags {
		if f.start < existing.End() && existing.start < f.End() {
			return fmt.Errorf("%w: flag %q bits [%d,%d) overlap flag %q bits [%d,%d)",
				errs.ErrBitRangeCollision, f.name, f.start, f.End(), existing.name, existing.start, existing.End())
		}
	}

	idx, _ := slices.BinarySearchFunc(r.flags, f, func(a, b *Flag) int {
		return a.start - b.start
	})
	r.flags = slices.Insert(r.flags, idx, f)
	r.byName[f.name] = f
	if f.End() > r.totalWidth {
		r.totalWidth = f.End()
	}

	return nil
}

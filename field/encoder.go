package field

import (
	"fmt"
	"strings"

	"github.com/arloliu/bitfield/encoding"
	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
	"github.com/arloliu/bitfield/internal/pool"
	"github.com/arloliu/bitfield/registry"
)

// stagedColumn holds one flag's encoded codes until Finish packs them.
// The slice comes from the shared pool and is released after packing.
type stagedColumn struct {
	codes   []uint64
	release func()
}

// Encoder packs per-flag raw columns into one uint64 per record.
//
// Usage is staged: construct with the registry and record count, stage
// every flag's raw column with the Put method matching its kind, then call
// Finish once to produce the Field. Staging order does not matter and a
// flag may be re-staged before Finish; the last column wins.
//
// Every raw value is an explicit Put input. The encoder never consults
// ambient state, so independent encoders can run concurrently; a single
// Encoder is not safe for concurrent use.
type Encoder struct {
	reg         *registry.Registry
	recordCount int
	staged      map[string]stagedColumn
	finished    bool
}

// NewEncoder creates an encoder for recordCount records laid out by reg.
//
// The registry is frozen: its layout must not change between encoding and
// decoding, so further Add calls fail with errs.ErrRegistryFrozen.
func NewEncoder(reg *registry.Registry, recordCount int) (*Encoder, error) {
	if reg.Len() == 0 {
		return nil, fmt.Errorf("%w: cannot encode", errs.ErrEmptyRegistry)
	}
	if recordCount <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidRecordCount, recordCount)
	}
	if reg.TotalWidth() > registry.MaxWidth {
		return nil, fmt.Errorf("%w: layout spans %d bits", errs.ErrFieldWidthExceeded, reg.TotalWidth())
	}

	reg.Freeze()

	return &Encoder{
		reg:         reg,
		recordCount: recordCount,
		staged:      make(map[string]stagedColumn, reg.Len()),
	}, nil
}

// PutBinary stages the raw column of a plain binary flag.
func (e *Encoder) PutBinary(name string, values []bool) error {
	f, err := e.lookup(name, format.KindBinary)
	if err != nil {
		return err
	}
	if f.HasNA() {
		return fmt.Errorf("%w: flag %q reserves an NA sentinel, use PutBinaryNA", errs.ErrFlagKindMismatch, name)
	}
	if len(values) != e.recordCount {
		return e.lengthMismatch(name, len(values))
	}

	codes, release := pool.GetUint64Slice(e.recordCount)
	for i, v := range values {
		codes[i] = encoding.EncodeBinary(v)
	}
	e.stage(name, codes, release)

	return nil
}

// PutBinaryNA stages the raw column of an NA-carrying binary flag: the
// test outcomes plus a mask marking the records where the test never ran.
// A marked record encodes the flag's sentinel regardless of its outcome
// value.
func (e *Encoder) PutBinaryNA(name string, values, missing []bool) error {
	f, err := e.lookup(name, format.KindBinary)
	if err != nil {
		return err
	}
	if !f.HasNA() {
		return fmt.Errorf("%w: flag %q has no NA sentinel, use PutBinary", errs.ErrFlagKindMismatch, name)
	}
	if len(values) != e.recordCount {
		return e.lengthMismatch(name, len(values))
	}
	if len(missing) != e.recordCount {
		return e.lengthMismatch(name, len(missing))
	}

	sentinel := f.NASentinel()
	codes, release := pool.GetUint64Slice(e.recordCount)
	for i, v := range values {
		codes[i] = encoding.EncodeBinaryNA(v, missing[i], sentinel)
	}
	e.stage(name, codes, release)

	return nil
}

// PutCases stages the raw columns of a case flag: one boolean predicate
// column per case, in case order. Each record's true predicates resolve to
// a single case index under the flag's CaseMode; a record with no true
// predicate encodes the reserved no-case code.
func (e *Encoder) PutCases(name string, caseColumns ...[]bool) error {
	f, err := e.lookup(name, format.KindCase)
	if err != nil {
		return err
	}
	if len(caseColumns) != f.CaseCount() {
		return fmt.Errorf("%w: got %d case columns, flag %q has %d cases",
			errs.ErrLengthMismatch, len(caseColumns), name, f.CaseCount())
	}
	for _, column := range caseColumns {
		if len(column) != e.recordCount {
			return e.lengthMismatch(name, len(column))
		}
	}

	width := f.Width()
	mode := f.CaseMode()
	outcomes := make([]bool, len(caseColumns))
	codes, release := pool.GetUint64Slice(e.recordCount)
	for i := range e.recordCount {
		for j, column := range caseColumns {
			outcomes[j] = column[i]
		}

		index, err := encoding.ResolveCase(outcomes, mode)
		if err != nil {
			release()
			return fmt.Errorf("flag %q record %d: %w", name, i, err)
		}
		codes[i] = encoding.EncodeCase(index, width)
	}
	e.stage(name, codes, release)

	return nil
}

// PutCaseIndexes stages a pre-resolved case column: one case index per
// record, encoding.CaseNone (or any negative index) for records matching
// no case. Indexes at or above the flag's case count fail with
// errs.ErrCaseOutOfRange.
func (e *Encoder) PutCaseIndexes(name string, indexes []int) error {
	f, err := e.lookup(name, format.KindCase)
	if err != nil {
		return err
	}
	if len(indexes) != e.recordCount {
		return e.lengthMismatch(name, len(indexes))
	}

	width := f.Width()
	caseCount := f.CaseCount()
	codes, release := pool.GetUint64Slice(e.recordCount)
	for i, index := range indexes {
		if index >= caseCount {
			release()
			return fmt.Errorf("%w: flag %q record %d: index %d, case count %d",
				errs.ErrCaseOutOfRange, name, i, index, caseCount)
		}
		codes[i] = encoding.EncodeCase(index, width)
	}
	e.stage(name, codes, release)

	return nil
}

// PutCounts stages the raw column of a count flag. Values above the
// flag's declared maximum fail with errs.ErrCountOverflow even when they
// would still fit the flag's bit width.
func (e *Encoder) PutCounts(name string, values []uint64) error {
	f, err := e.lookup(name, format.KindCount)
	if err != nil {
		return err
	}
	if len(values) != e.recordCount {
		return e.lengthMismatch(name, len(values))
	}

	maxValue := f.MaxCount()
	width := f.Width()
	codes, release := pool.GetUint64Slice(e.recordCount)
	for i, v := range values {
		if v > maxValue {
			release()
			return fmt.Errorf("%w: flag %q record %d: value %d exceeds declared maximum %d",
				errs.ErrCountOverflow, name, i, v, maxValue)
		}

		code, err := encoding.EncodeCount(v, width)
		if err != nil {
			release()
			return fmt.Errorf("flag %q record %d: %w", name, i, err)
		}
		codes[i] = code
	}
	e.stage(name, codes, release)

	return nil
}

// PutNumerics stages the raw column of a numeric flag. Encoding rounds
// each value to the flag's precision; out-of-range magnitudes saturate to
// infinity and NaN encodes as the canonical quiet NaN.
func (e *Encoder) PutNumerics(name string, values []float64) error {
	f, err := e.lookup(name, format.KindNumeric)
	if err != nil {
		return err
	}
	if len(values) != e.recordCount {
		return e.lengthMismatch(name, len(values))
	}

	spec, err := format.SpecFor(f.Precision())
	if err != nil {
		return fmt.Errorf("flag %q: %w", name, err)
	}

	codes, release := pool.GetUint64Slice(e.recordCount)
	for i, v := range values {
		codes[i] = encoding.EncodeFloat(v, spec)
	}
	e.stage(name, codes, release)

	return nil
}

// Finish packs every staged column into one uint64 per record and returns
// the encoded Field, stamped with the registry fingerprint.
//
// Finish fails with errs.ErrMissingColumn if any registry flag was never
// staged; the encoder stays usable so the missing columns can still be
// staged. After a successful Finish the encoder rejects further use with
// errs.ErrEncoderFinished.
func (e *Encoder) Finish() (*Field, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}

	var missing []string
	for f := range e.reg.All() {
		if _, ok := e.staged[f.Name()]; !ok {
			missing = append(missing, f.Name())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", errs.ErrMissingColumn, strings.Join(missing, ", "))
	}

	totalWidth := e.reg.TotalWidth()
	values := make([]uint64, e.recordCount)
	for f := range e.reg.All() {
		// The first-declared flag lands in the most significant bits.
		shift := totalWidth - f.Start() - f.Width()
		codes := e.staged[f.Name()].codes
		for i := range values {
			values[i] |= codes[i] << shift
		}
	}

	for name, column := range e.staged {
		column.release()
		delete(e.staged, name)
	}
	e.finished = true

	return newEncodedField(totalWidth, e.reg.Fingerprint(), values), nil
}

// lookup resolves a flag by name and checks its kind, rejecting Put calls
// on a finished encoder.
func (e *Encoder) lookup(name string, kind format.FlagKind) (*registry.Flag, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}

	f, ok := e.reg.Flag(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownFlag, name)
	}
	if f.Kind() != kind {
		return nil, fmt.Errorf("%w: flag %q is %s, not %s", errs.ErrFlagKindMismatch, name, f.Kind(), kind)
	}

	return f, nil
}

// stage records a flag's encoded codes, replacing and releasing any
// earlier column staged under the same name.
func (e *Encoder) stage(name string, codes []uint64, release func()) {
	if previous, ok := e.staged[name]; ok {
		previous.release()
	}
	e.staged[name] = stagedColumn{codes: codes, release: release}
}

// lengthMismatch builds the error for a raw column whose length differs
// from the encoder's record count.
func (e *Encoder) lengthMismatch(name string, got int) error {
	return fmt.Errorf("%w: flag %q column has %d records, encoder has %d",
		errs.ErrLengthMismatch, name, got, e.recordCount)
}

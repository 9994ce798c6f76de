package field

import (
	"fmt"

	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
	"github.com/arloliu/bitfield/registry"
)

// Decoded holds every flag's reconstructed column from one Decode call.
// The typed accessors check the flag's kind, so asking for the wrong
// shape of a column fails instead of returning an empty slice.
//
// Returned slices are owned by the Decoded value and must not be
// modified.
type Decoded struct {
	names   []string
	columns map[string]*decodedColumn
	length  int
}

// decodedColumn carries one flag's reconstructed values; only the slices
// matching the flag's kind are populated.
type decodedColumn struct {
	flag    *registry.Flag
	bools   []bool
	missing []bool
	cases   []int
	counts  []uint64
	reals   []float64
}

// Len returns the number of decoded records.
func (d *Decoded) Len() int { return d.length }

// Names returns the flag names in bit order. The slice is shared and must
// not be modified.
func (d *Decoded) Names() []string { return d.names }

// Bools returns the reconstructed outcomes of a plain binary flag.
func (d *Decoded) Bools(name string) ([]bool, error) {
	column, err := d.column(name, format.KindBinary)
	if err != nil {
		return nil, err
	}
	if column.flag.HasNA() {
		return nil, fmt.Errorf("%w: flag %q reserves an NA sentinel, use BoolsNA", errs.ErrFlagKindMismatch, name)
	}

	return column.bools, nil
}

// BoolsNA returns the reconstructed outcomes of an NA-carrying binary
// flag along with its missing mask. A record whose mask entry is true
// carried the sentinel; its outcome value is false and meaningless.
func (d *Decoded) BoolsNA(name string) (values, missing []bool, err error) {
	column, err := d.column(name, format.KindBinary)
	if err != nil {
		return nil, nil, err
	}
	if !column.flag.HasNA() {
		return nil, nil, fmt.Errorf("%w: flag %q has no NA sentinel, use Bools", errs.ErrFlagKindMismatch, name)
	}

	return column.bools, column.missing, nil
}

// Cases returns the reconstructed case indexes of a case flag,
// encoding.CaseNone for records that stored the no-case code or any
// foreign code at or above the case count.
func (d *Decoded) Cases(name string) ([]int, error) {
	column, err := d.column(name, format.KindCase)
	if err != nil {
		return nil, err
	}

	return column.cases, nil
}

// Counts returns the reconstructed values of a count flag.
func (d *Decoded) Counts(name string) ([]uint64, error) {
	column, err := d.column(name, format.KindCount)
	if err != nil {
		return nil, err
	}

	return column.counts, nil
}

// Reals returns the reconstructed values of a numeric flag, rounded to
// the flag's precision by the encode side.
func (d *Decoded) Reals(name string) ([]float64, error) {
	column, err := d.column(name, format.KindNumeric)
	if err != nil {
		return nil, err
	}

	return column.reals, nil
}

// column resolves a decoded column by name and checks the flag kind.
func (d *Decoded) column(name string, kind format.FlagKind) (*decodedColumn, error) {
	column, ok := d.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownFlag, name)
	}
	if column.flag.Kind() != kind {
		return nil, fmt.Errorf("%w: flag %q is %s, not %s", errs.ErrFlagKindMismatch, name, column.flag.Kind(), kind)
	}

	return column, nil
}

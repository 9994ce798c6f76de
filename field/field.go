package field

import (
	"fmt"
	"iter"

	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/registry"
)

// Field holds one encoded bitfield column: one packed uint64 per record,
// every record laid out per the same registry. The first-declared flag
// occupies the most significant bits of the layout.
//
// Fields come out of Encoder.Finish or, for columns restored from caller
// storage, NewField. A Field is immutable and safe for concurrent reads.
type Field struct {
	width       int
	fingerprint uint64
	values      []uint64
}

// NewField rebuilds a Field from a persisted column of packed values and
// the bit width it was encoded with.
//
// How the column was stored is the caller's concern; NewField only
// restores the in-memory form. The layout fingerprint is unknown for a
// restored Field (Fingerprint returns 0), so NewDecoder skips the
// fingerprint comparison and relies on the width check alone.
func NewField(width int, values []uint64) (*Field, error) {
	if width < 1 || width > registry.MaxWidth {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidFieldWidth, width)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty column", errs.ErrInvalidRecordCount)
	}

	return &Field{width: width, values: values}, nil
}

// newEncodedField wraps an encoder's packed output with its layout
// identity.
func newEncodedField(width int, fingerprint uint64, values []uint64) *Field {
	return &Field{width: width, fingerprint: fingerprint, values: values}
}

// Width returns the bit width of every record's packed value.
func (f *Field) Width() int { return f.width }

// Len returns the number of records.
func (f *Field) Len() int { return len(f.values) }

// Fingerprint returns the fingerprint of the registry the field was
// encoded with, or 0 when the field was rebuilt from storage and the
// fingerprint is unknown.
func (f *Field) Fingerprint() uint64 { return f.fingerprint }

// At returns the packed value of record i. It panics when i is out of
// range, like a slice index.
func (f *Field) At(i int) uint64 { return f.values[i] }

// Values returns the underlying packed column. The slice is shared with
// the Field and must not be modified; copy it before persisting if the
// destination mutates buffers.
func (f *Field) Values() []uint64 { return f.values }

// All iterates the packed values in record order.
func (f *Field) All() iter.Seq2[int, uint64] {
	return func(yield func(int, uint64) bool) {
		for i, v := range f.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

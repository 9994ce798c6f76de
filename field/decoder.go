package field

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/bitfield/encoding"
	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
	"github.com/arloliu/bitfield/internal/options"
	"github.com/arloliu/bitfield/internal/pool"
	"github.com/arloliu/bitfield/registry"
)

// Decoder reconstructs per-flag values from a packed Field.
//
// Construction verifies that the registry and the field agree on the
// layout; after that every operation is total: any bit pattern decodes to
// a value (foreign case codes become encoding.CaseNone, any numeric
// pattern becomes a float64), so post-construction calls never yield
// partial output.
//
// A Decoder only reads its registry and field and is safe for concurrent
// use.
type Decoder struct {
	reg   *registry.Registry
	field *Field

	// Per-flag extraction tables in bit order.
	flags  []*registry.Flag
	shifts []int
	masks  []uint64
}

// NewDecoder creates a decoder for field f laid out by reg.
//
// The registry is frozen. NewDecoder fails with
// errs.ErrRegistryFieldMismatch when the registry's total width differs
// from the field's, and with errs.ErrFingerprintMismatch when both layout
// fingerprints are known and differ; WithoutFingerprintCheck disables the
// latter comparison.
func NewDecoder(reg *registry.Registry, f *Field, opts ...DecoderOption) (*Decoder, error) {
	cfg := &decoderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if reg.TotalWidth() != f.Width() {
		return nil, fmt.Errorf("%w: registry spans %d bits, field records are %d bits",
			errs.ErrRegistryFieldMismatch, reg.TotalWidth(), f.Width())
	}
	if !cfg.skipFingerprintCheck && f.Fingerprint() != 0 && f.Fingerprint() != reg.Fingerprint() {
		return nil, fmt.Errorf("%w: field 0x%016x, registry 0x%016x",
			errs.ErrFingerprintMismatch, f.Fingerprint(), reg.Fingerprint())
	}

	reg.Freeze()

	totalWidth := reg.TotalWidth()
	flags := make([]*registry.Flag, 0, reg.Len())
	shifts := make([]int, 0, reg.Len())
	masks := make([]uint64, 0, reg.Len())
	for fl := range reg.All() {
		flags = append(flags, fl)
		shifts = append(shifts, totalWidth-fl.Start()-fl.Width())
		// MaxCount doubles as the all-ones extraction mask of a width.
		masks = append(masks, encoding.MaxCount(fl.Width()))
	}

	return &Decoder{reg: reg, field: f, flags: flags, shifts: shifts, masks: masks}, nil
}

// Decode reconstructs every flag's typed column and returns them bundled
// as a Decoded.
func (d *Decoder) Decode() (*Decoded, error) {
	n := d.field.Len()
	decoded := &Decoded{
		names:   make([]string, len(d.flags)),
		columns: make(map[string]*decodedColumn, len(d.flags)),
		length:  n,
	}

	for k, f := range d.flags {
		decoded.names[k] = f.Name()
		shift, mask := d.shifts[k], d.masks[k]
		column := &decodedColumn{flag: f}

		switch f.Kind() {
		case format.KindBinary:
			column.bools = make([]bool, n)
			if f.HasNA() {
				column.missing = make([]bool, n)
				sentinel := f.NASentinel()
				for i, v := range d.field.Values() {
					column.bools[i], column.missing[i] = encoding.DecodeBinaryNA((v>>shift)&mask, sentinel)
				}
			} else {
				for i, v := range d.field.Values() {
					column.bools[i] = encoding.DecodeBinary((v >> shift) & mask)
				}
			}
		case format.KindCase:
			column.cases = make([]int, n)
			caseCount := f.CaseCount()
			for i, v := range d.field.Values() {
				column.cases[i] = encoding.DecodeCase((v>>shift)&mask, caseCount)
			}
		case format.KindCount:
			column.counts = make([]uint64, n)
			for i, v := range d.field.Values() {
				column.counts[i] = encoding.DecodeCount((v >> shift) & mask)
			}
		case format.KindNumeric:
			spec, err := format.SpecFor(f.Precision())
			if err != nil {
				return nil, fmt.Errorf("flag %q: %w", f.Name(), err)
			}
			column.reals = make([]float64, n)
			for i, v := range d.field.Values() {
				column.reals[i] = encoding.DecodeFloat((v>>shift)&mask, spec)
			}
		default:
			return nil, fmt.Errorf("%w: flag %q: 0x%02x", errs.ErrInvalidFlagKind, f.Name(), uint8(f.Kind()))
		}

		decoded.columns[f.Name()] = column
	}

	return decoded, nil
}

// Lookup renders the field as a lookup table for human inspection: per
// record, each flag's literal bit substring, all flags joined with
// separator in bit order. Bits not covered by any flag are not rendered.
//
// The separator must be non-empty and must not contain the digits '0' or
// '1', so the rendered rows stay unambiguous.
func (d *Decoder) Lookup(separator string) ([]string, error) {
	if separator == "" || strings.ContainsAny(separator, "01") {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidSeparator, separator)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	rendered := make([]string, d.field.Len())
	for i, v := range d.field.Values() {
		buf.Reset()
		for k, f := range d.flags {
			if k > 0 {
				buf.B = append(buf.B, separator...)
			}
			buf.B = encoding.AppendBits(buf.B, (v>>d.shifts[k])&d.masks[k], f.Width())
		}
		rendered[i] = string(buf.B)
	}

	return rendered, nil
}

// Codes iterates one flag's raw stored codes in record order, without
// decoding them. Useful for auditing exactly what a field holds.
func (d *Decoder) Codes(name string) (iter.Seq2[int, uint64], error) {
	for k, f := range d.flags {
		if f.Name() != name {
			continue
		}

		shift, mask := d.shifts[k], d.masks[k]

		return func(yield func(int, uint64) bool) {
			for i, v := range d.field.Values() {
				if !yield(i, (v>>shift)&mask) {
					return
				}
			}
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrUnknownFlag, name)
}

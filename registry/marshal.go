package registry

import (
	"fmt"

	"github.com/arloliu/bitfield/compress"
	"github.com/arloliu/bitfield/encoding"
	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
	"github.com/arloliu/bitfield/internal/hash"
	"github.com/arloliu/bitfield/internal/options"
	"github.com/arloliu/bitfield/internal/pool"
	"github.com/arloliu/bitfield/section"
)

// Marshal serializes the registry into a self-describing binary blob:
//
//	[Header: 24 bytes][Flag entries: Len x 16 bytes][Names][Descriptions]
//
// Flag entries follow bit order. The names payload carries the registry
// name followed by every flag name; the descriptions payload mirrors it.
// Both payloads are compressed with the configured codec (zstd by default)
// and multi-byte fields use the configured byte order (little-endian by
// default).
//
// The returned slice is newly allocated and owned by the caller.
func (r *Registry) Marshal(opts ...MarshalOption) ([]byte, error) {
	if len(r.flags) == 0 {
		return nil, fmt.Errorf("%w: cannot marshal", errs.ErrEmptyRegistry)
	}

	cfg := newMarshalConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header := section.NewRegistryHeader(len(r.flags), r.totalWidth)
	header.Flag.SetCompression(cfg.compression)
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Fingerprint = r.Fingerprint()

	engine := header.Flag.GetEndianEngine()

	names := make([]string, 0, len(r.flags)+1)
	descriptions := make([]string, 0, len(r.flags)+1)
	names = append(names, r.name)
	descriptions = append(descriptions, r.description)
	for _, f := range r.flags {
		names = append(names, f.name)
		descriptions = append(descriptions, f.description)
	}

	namesPayload, err := encoding.EncodeStrings(names, engine)
	if err != nil {
		return nil, fmt.Errorf("names payload: %w", err)
	}
	descriptionsPayload, err := encoding.EncodeStrings(descriptions, engine)
	if err != nil {
		return nil, fmt.Errorf("descriptions payload: %w", err)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	compressedNames, err := codec.Compress(namesPayload)
	if err != nil {
		return nil, fmt.Errorf("compress names payload: %w", err)
	}
	compressedDescriptions, err := codec.Compress(descriptionsPayload)
	if err != nil {
		return nil, fmt.Errorf("compress descriptions payload: %w", err)
	}

	header.NamesSize = uint32(len(compressedNames))               //nolint: gosec
	header.DescriptionsSize = uint32(len(compressedDescriptions)) //nolint: gosec

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.MustWrite(header.Bytes())
	buf.ExtendOrGrow(header.EntriesSize())
	offset := section.FlagEntriesOffset
	for _, f := range r.flags {
		entry := section.FlagEntry{
			NameID: hash.ID(f.name),
			Param:  uint32(f.param()), //nolint: gosec
			Start:  f.start,
			Kind:   f.kind,
			Width:  f.width,
		}
		offset = entry.WriteToSlice(buf.Bytes(), offset, engine)
	}
	buf.MustWrite(compressedNames)
	buf.MustWrite(compressedDescriptions)

	blob := make([]byte, buf.Len())
	copy(blob, buf.Bytes())

	return blob, nil
}

// Unmarshal reconstructs a registry from its marshalled form. The blob's
// byte order and payload compression are read from the options word; the
// stored fingerprint and per-flag name hashes are verified, so a corrupted
// or tampered blob never yields a silently wrong layout.
//
// The returned registry is unfrozen: it can grow further flags, which
// changes its fingerprint.
func Unmarshal(data []byte) (*Registry, error) {
	header, err := section.ParseRegistryHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) != header.TotalSize() {
		return nil, fmt.Errorf("%w: blob is %d bytes, header describes %d",
			errs.ErrInvalidPayloadSize, len(data), header.TotalSize())
	}

	engine := header.Flag.GetEndianEngine()

	entries := make([]section.FlagEntry, header.FlagCount)
	offset := section.FlagEntriesOffset
	for i := range entries {
		entry, err := section.ParseFlagEntry(data[offset:offset+section.FlagEntrySize], engine)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
		offset += section.FlagEntrySize
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	namesPayload, err := codec.Decompress(data[header.NamesOffset():header.DescriptionsOffset()])
	if err != nil {
		return nil, fmt.Errorf("names payload: %w", err)
	}
	names, _, err := encoding.DecodeStrings(namesPayload, engine)
	if err != nil {
		return nil, fmt.Errorf("names payload: %w", err)
	}

	descriptionsPayload, err := codec.Decompress(data[header.DescriptionsOffset():header.TotalSize()])
	if err != nil {
		return nil, fmt.Errorf("descriptions payload: %w", err)
	}
	descriptions, _, err := encoding.DecodeStrings(descriptionsPayload, engine)
	if err != nil {
		return nil, fmt.Errorf("descriptions payload: %w", err)
	}

	if len(names) != header.FlagCount+1 || len(descriptions) != header.FlagCount+1 {
		return nil, fmt.Errorf("%w: %d names and %d descriptions for %d flags",
			errs.ErrInvalidStringCount, len(names), len(descriptions), header.FlagCount)
	}

	nameIDs := make([]uint64, header.FlagCount)
	for i, entry := range entries {
		nameIDs[i] = entry.NameID
	}
	if err := encoding.VerifyNameHashes(names[1:], nameIDs, hash.ID); err != nil {
		return nil, err
	}

	reg := New(names[0], descriptions[0])
	for i, entry := range entries {
		if err := reg.addEntry(entry, names[i+1], descriptions[i+1]); err != nil {
			return nil, err
		}
	}

	if reg.totalWidth != header.TotalWidth {
		return nil, fmt.Errorf("%w: flags span %d bits, header declares %d",
			errs.ErrInvalidHeaderFlags, reg.totalWidth, header.TotalWidth)
	}

	if fingerprint := reg.Fingerprint(); fingerprint != header.Fingerprint {
		return nil, fmt.Errorf("%w: computed 0x%016x, stored 0x%016x",
			errs.ErrFingerprintMismatch, fingerprint, header.Fingerprint)
	}

	return reg, nil
}

// addEntry rebuilds one flag from its marshalled entry, re-deriving the
// width from the kind and parameter and re-running the layout validation.
func (r *Registry) addEntry(entry section.FlagEntry, name, description string) error {
	f := &Flag{name: name, kind: entry.Kind}

	switch entry.Kind {
	case format.KindBinary:
		f.naSentinel = uint64(entry.Param)
		f.width = encoding.BinaryWidth
		if f.naSentinel != 0 {
			if !encoding.IsValidNASentinel(f.naSentinel) {
				return fmt.Errorf("%w: flag %q: 0b%b", errs.ErrInvalidNASentinel, name, f.naSentinel)
			}
			f.width = encoding.BinaryNAWidth
		}
	case format.KindCase:
		f.caseCount = entry.CaseCount()
		f.caseMode = entry.CaseMode()
		if f.caseCount < 1 {
			return fmt.Errorf("%w: flag %q: %d", errs.ErrInvalidCaseCount, name, f.caseCount)
		}
		switch f.caseMode {
		case format.CaseFirstWins, format.CaseLastWins, format.CaseStrict:
		default:
			return fmt.Errorf("%w: flag %q: %d", errs.ErrInvalidCaseMode, name, f.caseMode)
		}
		f.width = encoding.CaseWidth(f.caseCount)
	case format.KindCount:
		f.maxValue = uint64(entry.Param)
		f.width = encoding.CountWidth(f.maxValue)
	case format.KindNumeric:
		if entry.Param > uint32(format.PrecisionDouble) {
			return fmt.Errorf("%w: flag %q: %d", errs.ErrUnknownPrecision, name, entry.Param)
		}
		f.precision = format.Precision(entry.Param)
		spec, err := format.SpecFor(f.precision)
		if err != nil {
			return fmt.Errorf("flag %q: %w", name, err)
		}
		f.width = spec.TotalBits()
	default:
		return fmt.Errorf("%w: flag %q: 0x%02x", errs.ErrInvalidFlagKind, name, uint8(entry.Kind))
	}

	if f.width != entry.Width {
		return fmt.Errorf("%w: flag %q stores width %d, its kind requires %d",
			errs.ErrInvalidEntrySize, name, entry.Width, f.width)
	}

	return r.addFlag(f, &flagConfig{position: entry.Start, description: description})
}

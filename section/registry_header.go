package section

import (
	"fmt"

	"github.com/arloliu/bitfield/errs"
)

// RegistryHeader represents the fixed-size header section at the start of a
// marshalled registry blob.
//
// The blob layout is:
//
//	[Header: 24 bytes][Flag entries: FlagCount x 16 bytes][Names payload][Descriptions payload]
//
// The two payloads are compressed with the codec recorded in the options word.
type RegistryHeader struct {
	// Version is the blob format version. byte offset 2
	Version uint8
	// FlagCount is the number of flag entries, max 64. byte offset 3
	FlagCount int
	// TotalWidth is the field width in bits covered by the registry layout.
	TotalWidth int // byte offset 4-5
	// NamesSize is the compressed byte size of the names payload.
	NamesSize uint32 // byte offset 8-11
	// DescriptionsSize is the compressed byte size of the descriptions payload.
	DescriptionsSize uint32 // byte offset 12-15
	// Fingerprint is the layout fingerprint of the marshalled registry.
	Fingerprint uint64 // byte offset 16-23

	// Flag is the packed options word. byte offset 0-1
	Flag RegistryFlag
}

// NewRegistryHeader creates a new RegistryHeader with default options.
// The payload sizes and fingerprint are set by the marshaller once the
// payloads are built.
func NewRegistryHeader(flagCount, totalWidth int) *RegistryHeader {
	return &RegistryHeader{
		Flag:       NewRegistryFlag(),
		Version:    FormatVersion,
		FlagCount:  flagCount,
		TotalWidth: totalWidth,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 24 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber,
//     ErrUnsupportedVersion, or ErrInvalidHeaderFlags
func (h *RegistryHeader) Parse(data []byte) error {
	if len(data) != RegistryHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Parse the options word first to determine endianness (the word itself
	// is always little-endian)
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	h.Version = data[2]
	if h.Version != FormatVersion {
		return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, h.Version)
	}

	engine := h.Flag.GetEndianEngine()

	h.FlagCount = int(data[3])
	h.TotalWidth = int(engine.Uint16(data[4:6]))
	if reserved := engine.Uint16(data[6:8]); reserved != 0 {
		return fmt.Errorf("%w: reserved bytes 0x%04x", errs.ErrInvalidHeaderFlags, reserved)
	}

	h.NamesSize = engine.Uint32(data[8:12])
	h.DescriptionsSize = engine.Uint32(data[12:16])
	h.Fingerprint = engine.Uint64(data[16:24])

	if h.FlagCount < 1 || h.FlagCount > MaxFlagCount {
		return fmt.Errorf("%w: flag count %d", errs.ErrInvalidHeaderFlags, h.FlagCount)
	}
	if h.TotalWidth < 1 || h.TotalWidth > 64 {
		return fmt.Errorf("%w: total width %d", errs.ErrInvalidHeaderFlags, h.TotalWidth)
	}

	return nil
}

// Bytes serializes the RegistryHeader into a byte slice.
func (h *RegistryHeader) Bytes() []byte {
	b := make([]byte, RegistryHeaderSize)

	engine := h.Flag.GetEndianEngine()

	// The options word is always little-endian so parsers can read it before
	// knowing the blob's byte order
	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Version
	b[3] = uint8(h.FlagCount)                      //nolint: gosec
	engine.PutUint16(b[4:6], uint16(h.TotalWidth)) //nolint: gosec
	engine.PutUint16(b[6:8], 0)
	engine.PutUint32(b[8:12], h.NamesSize)
	engine.PutUint32(b[12:16], h.DescriptionsSize)
	engine.PutUint64(b[16:24], h.Fingerprint)

	return b
}

// EntriesSize returns the byte size of the flag entry section.
func (h *RegistryHeader) EntriesSize() int {
	return h.FlagCount * FlagEntrySize
}

// NamesOffset returns the byte offset of the compressed names payload.
func (h *RegistryHeader) NamesOffset() int {
	return FlagEntriesOffset + h.EntriesSize()
}

// DescriptionsOffset returns the byte offset of the compressed descriptions
// payload.
func (h *RegistryHeader) DescriptionsOffset() int {
	return h.NamesOffset() + int(h.NamesSize)
}

// TotalSize returns the total byte size of the blob described by the header.
func (h *RegistryHeader) TotalSize() int {
	return h.DescriptionsOffset() + int(h.DescriptionsSize)
}

// ParseRegistryHeader parses a RegistryHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 24 bytes)
//
// Returns:
//   - RegistryHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or header validation errors
func ParseRegistryHeader(data []byte) (RegistryHeader, error) {
	if len(data) < RegistryHeaderSize {
		return RegistryHeader{}, errs.ErrInvalidHeaderSize
	}

	h := RegistryHeader{}
	if err := h.Parse(data[:RegistryHeaderSize]); err != nil {
		return RegistryHeader{}, err
	}

	return h, nil
}

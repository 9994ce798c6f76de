package section

import (
	"github.com/arloliu/bitfield/endian"
	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
)

// FlagEntry records one flag's layout in the flag entry section of a
// marshalled registry blob. It is a fixed size of 16 bytes.
//
// The flag's name and description travel separately in the string payloads,
// in entry order; NameID ties an entry back to its name for verification.
type FlagEntry struct {
	// NameID is the xxHash64 hash of the flag name string.
	//
	// Offset: 0, Size: 8 bytes
	NameID uint64

	// Param is a kind-specific parameter:
	//   - Binary: the NA sentinel code (0 for the plain 1-bit variant)
	//   - Case: case count in bits 0-15, case mode in bits 16-23
	//   - Count: the declared maximum value
	//   - Numeric: the format.Precision value
	//
	// Offset: 8, Size: 4 bytes
	Param uint32

	// Start is the flag's starting bit position from the most significant
	// side of the field.
	//
	// Offset: 12, Size: 2 bytes
	Start int

	// Kind is the format.FlagKind value.
	//
	// Offset: 14, Size: 1 byte
	Kind format.FlagKind

	// Width is the flag's bit width, 1-64.
	//
	// Offset: 15, Size: 1 byte
	Width int
}

// NewCaseParam packs a case flag's count and mode into an entry parameter.
func NewCaseParam(caseCount int, mode format.CaseMode) uint32 {
	return uint32(caseCount)&0xFFFF | uint32(mode)<<16 //nolint: gosec
}

// CaseCount extracts the case count from a case flag's parameter.
func (e FlagEntry) CaseCount() int {
	return int(e.Param & 0xFFFF)
}

// CaseMode extracts the case mode from a case flag's parameter.
func (e FlagEntry) CaseMode() format.CaseMode {
	return format.CaseMode((e.Param >> 16) & 0xFF)
}

// Bytes returns the flag entry as a byte slice using the specified endian engine.
//
// Parameters:
//   - engine: Endian engine for byte order
//
// Returns:
//   - []byte: 16-byte flag entry with all fields encoded
func (e *FlagEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [FlagEntrySize]byte // stack allocation, it's faster than heap allocation
	engine.PutUint64(b[0:8], e.NameID)
	engine.PutUint32(b[8:12], e.Param)
	engine.PutUint16(b[12:14], uint16(e.Start)) //nolint: gosec
	b[14] = uint8(e.Kind)
	b[15] = uint8(e.Width) //nolint: gosec

	return b[:]
}

// WriteToSlice writes to a pre-allocated slice and returns the next position.
//
// This is the most efficient method when writing multiple entries sequentially.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 16 bytes at offset)
//   - offset: Starting position in data slice
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + 16)
func (e *FlagEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], e.NameID)
	engine.PutUint32(data[offset+8:offset+12], e.Param)
	engine.PutUint16(data[offset+12:offset+14], uint16(e.Start)) //nolint: gosec
	data[offset+14] = uint8(e.Kind)
	data[offset+15] = uint8(e.Width) //nolint: gosec

	return offset + FlagEntrySize
}

// ParseFlagEntry parses a FlagEntry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the flag entry (must be at least 16 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - FlagEntry: Parsed flag entry
//   - error: ErrInvalidEntrySize if data is too short
func ParseFlagEntry(data []byte, engine endian.EndianEngine) (FlagEntry, error) {
	if len(data) < FlagEntrySize {
		return FlagEntry{}, errs.ErrInvalidEntrySize
	}

	return FlagEntry{
		NameID: engine.Uint64(data[0:8]),
		Param:  engine.Uint32(data[8:12]),
		Start:  int(engine.Uint16(data[12:14])),
		Kind:   format.FlagKind(data[14]),
		Width:  int(data[15]),
	}, nil
}

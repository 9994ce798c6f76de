// Package section defines the low-level binary structures and constants for
// the registry blob format.
//
// This package provides the types that define the physical layout of a
// marshalled registry. It handles binary serialization and deserialization of
// the header, the packed options word, and the fixed-size flag entries,
// ensuring a consistent byte-level representation across platforms.
//
// # Blob Structure
//
// A registry blob consists of two fixed-size sections followed by two
// variable-size payloads:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed)                                │
//	│  - Options (2 bytes): magic, endianness, compression    │
//	│  - Version (1 byte), FlagCount (1 byte)                 │
//	│  - TotalWidth (2 bytes), reserved (2 bytes)             │
//	│  - Payload sizes (8 bytes): names, descriptions         │
//	│  - Fingerprint (8 bytes)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Flag entries (N × 16 bytes, fixed per entry)            │
//	│  - One entry per flag, in bit position order            │
//	│  - NameID, kind-specific parameter, start, kind, width  │
//	├─────────────────────────────────────────────────────────┤
//	│ Names payload (variable, compressed)                    │
//	│  - Length-prefixed strings                              │
//	│  - Registry name first, then flag names in entry order  │
//	├─────────────────────────────────────────────────────────┤
//	│ Descriptions payload (variable, compressed)             │
//	│  - Same order as the names payload                      │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
// RegistryHeader (24 bytes):
//
//	Bytes  | Field            | Type   | Description
//	-------|------------------|--------|----------------------------------
//	0-1    | Options          | uint16 | Magic, endianness, compression
//	2      | Version          | uint8  | Format version (currently 1)
//	3      | FlagCount        | uint8  | Number of flag entries (1-64)
//	4-5    | TotalWidth       | uint16 | Field width in bits (1-64)
//	6-7    | Reserved         | uint16 | Must be zero
//	8-11   | NamesSize        | uint32 | Compressed names payload size
//	12-15  | DescriptionsSize | uint32 | Compressed descriptions payload size
//	16-23  | Fingerprint      | uint64 | Registry layout fingerprint
//
// The options word itself is always little-endian so a parser can read it
// before knowing the blob's byte order. All other multi-byte fields use the
// byte order recorded in the options word.
//
// # Flag Entry Format
//
// FlagEntry (16 bytes):
//
//	Bytes  | Field  | Type   | Description
//	-------|--------|--------|----------------------------------
//	0-7    | NameID | uint64 | xxHash64 of the flag name
//	8-11   | Param  | uint32 | Kind-specific parameter
//	12-13  | Start  | uint16 | Bit position from the MSB side
//	14     | Kind   | uint8  | format.FlagKind
//	15     | Width  | uint8  | Bit width (1-64)
//
// Flag names and descriptions are not stored in the entries; they travel in
// the compressed string payloads in entry order. NameID lets unmarshalling
// verify that payload strings and entries line up.
//
// # Usage
//
// This package is used internally by the registry package's Marshal and
// Unmarshal. Use it directly only when implementing custom tooling that
// inspects registry blobs.
package section

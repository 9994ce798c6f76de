package section

const (
	// Bit masks for the packed options word
	EndiannessMask  = 0x0001 // Mask for endianness bit (bit 0)
	CompressionMask = 0x000E // Mask for payload compression type (bits 1-3)
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	// CompressionShift positions a format.CompressionType inside the options word.
	CompressionShift = 1

	// Magic numbers (bits 4-15)
	MagicRegistryV1Opt = 0xBF10 // Version 1 magic number for the registry blob format.

	// FormatVersion is the registry blob format version written by this package.
	FormatVersion = 1
)

// Offsets and section sizes in the registry blob
const (
	RegistryHeaderSize = 24                 // fixed header size in bytes
	FlagEntrySize      = 16                 // fixed flag entry size in bytes
	FlagEntriesOffset  = RegistryHeaderSize // byte offset where the flag entry section starts

	// MaxFlagCount bounds the number of flags a blob can carry. A field is at
	// most 64 bits and every flag occupies at least one, so 64 entries cover
	// every valid registry.
	MaxFlagCount = 64

	// MaxCaseCount bounds the case count of a case flag: the entry parameter
	// stores it in 16 bits.
	MaxCaseCount = 0xFFFF
)

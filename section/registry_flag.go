package section

import (
	"github.com/arloliu/bitfield/endian"
	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
)

// RegistryFlag represents the packed options word in the registry blob header.
type RegistryFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1-3 hold the compression type applied to the string payloads.
	// Bit 4-15 are magic number to identify the blob format:
	//   - 0xBF10 (0b1011_1111_0001_0000): Registry blob format v1
	Options uint16
}

// NewRegistryFlag creates a new RegistryFlag with default settings:
// little-endian byte order and Zstd payload compression.
func NewRegistryFlag() RegistryFlag {
	flag := RegistryFlag{Options: MagicRegistryV1Opt}
	flag.WithLittleEndian()
	flag.SetCompression(format.CompressionZstd)

	return flag
}

// IsLittleEndian returns whether the blob is little-endian.
func (f RegistryFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the blob is big-endian.
func (f RegistryFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *RegistryFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *RegistryFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// Compression returns the payload compression type from bits 1-3.
func (f RegistryFlag) Compression() format.CompressionType {
	return format.CompressionType((f.Options & CompressionMask) >> CompressionShift)
}

// SetCompression sets the payload compression type in bits 1-3.
func (f *RegistryFlag) SetCompression(compression format.CompressionType) {
	f.Options &^= CompressionMask
	f.Options |= (uint16(compression) << CompressionShift) & CompressionMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f RegistryFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f RegistryFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicRegistryV1Opt
}

// IsValidCompression checks if the compression type is valid.
func (f RegistryFlag) IsValidCompression() bool {
	switch f.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return true
	default:
		return false
	}
}

// Validate checks if the options word contains valid values.
func (f RegistryFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if !f.IsValidCompression() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f RegistryFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

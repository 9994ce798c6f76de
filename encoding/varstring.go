package encoding

import (
	"fmt"

	"github.com/arloliu/bitfield/endian"
	"github.com/arloliu/bitfield/errs"
)

// MaxStringLength is the maximum byte length of a single name or
// description in a string payload, bounded by the uint16 length prefix.
const MaxStringLength = 65535

// MaxStringCount is the maximum number of strings in one payload, bounded
// by the uint16 count prefix.
const MaxStringCount = 65535

// EncodeStrings encodes an ordered list of strings into a length-prefixed
// binary payload.
//
// Format: [Count: uint16] [Len1: uint16][Str1: UTF-8] [Len2: uint16][Str2: UTF-8] ...
//
// The registry marshaller uses this for the flag names and descriptions
// payloads (optionally compressed afterwards).
//
// Parameters:
//   - values: The ordered strings to encode
//   - engine: The endian engine for the count and length fields
//
// Returns:
//   - []byte: The encoded payload
//   - error: errs.ErrInvalidStringCount or errs.ErrStringTooLong when a
//     limit is exceeded
func EncodeStrings(values []string, engine endian.EndianEngine) ([]byte, error) {
	if len(values) > MaxStringCount {
		return nil, fmt.Errorf("%w: count %d exceeds maximum %d", errs.ErrInvalidStringCount, len(values), MaxStringCount)
	}

	totalSize := 2
	for _, value := range values {
		if len(value) > MaxStringLength {
			return nil, fmt.Errorf("%w: length %d exceeds maximum %d", errs.ErrStringTooLong, len(value), MaxStringLength)
		}
		totalSize += 2 + len(value)
	}

	buf := make([]byte, totalSize)
	offset := 0

	engine.PutUint16(buf[offset:], uint16(len(values))) //nolint: gosec
	offset += 2

	for _, value := range values {
		engine.PutUint16(buf[offset:], uint16(len(value))) //nolint: gosec
		offset += 2

		copy(buf[offset:], value)
		offset += len(value)
	}

	return buf, nil
}

// DecodeStrings decodes a length-prefixed string payload produced by
// EncodeStrings.
//
// Parameters:
//   - data: The payload, starting at the count field
//   - engine: The endian engine for the count and length fields
//
// Returns:
//   - []string: The decoded strings, in order
//   - int: The total number of bytes consumed
//   - error: errs.ErrInvalidStringPayload when the payload is truncated
func DecodeStrings(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 2 {
		return nil, 0, fmt.Errorf("%w: cannot read string count (need 2 bytes, have %d)",
			errs.ErrInvalidStringPayload, len(data))
	}

	count := int(engine.Uint16(data))
	offset := 2

	values := make([]string, count)
	for i := range count {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: cannot read length of string %d (need 2 bytes at offset %d, have %d total)",
				errs.ErrInvalidStringPayload, i, offset, len(data))
		}

		strLen := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+strLen {
			return nil, 0, fmt.Errorf("%w: cannot read string %d (need %d bytes at offset %d, have %d total)",
				errs.ErrInvalidStringPayload, i, strLen, offset, len(data))
		}

		values[i] = string(data[offset : offset+strLen])
		offset += strLen
	}

	return values, offset, nil
}

// VerifyNameHashes verifies that names hash to the expected IDs, in order.
// Unmarshalling uses this to cross-check the names payload against the name
// IDs stored in the fixed-size flag entries.
//
// Parameters:
//   - names: The decoded flag names, in entry order
//   - nameIDs: The name IDs from the flag entries, in the same order
//   - hashFunc: The hash over a flag name (hash.ID in production)
//
// Returns:
//   - error: errs.ErrHashMismatch on the first mismatch, nil when all match
func VerifyNameHashes(names []string, nameIDs []uint64, hashFunc func(string) uint64) error {
	if len(names) != len(nameIDs) {
		return fmt.Errorf("%w: name count %d does not match ID count %d",
			errs.ErrInvalidStringCount, len(names), len(nameIDs))
	}

	for i, name := range names {
		if expected := hashFunc(name); expected != nameIDs[i] {
			return fmt.Errorf("%w: name %q at index %d: expected 0x%016x, got 0x%016x",
				errs.ErrHashMismatch, name, i, expected, nameIDs[i])
		}
	}

	return nil
}

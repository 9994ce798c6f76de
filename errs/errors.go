// Package errs defines the sentinel errors returned by the bitfield
// library.
//
// All errors are plain sentinel values created with errors.New. Call
// sites wrap them with fmt.Errorf("%w: ...", err) to attach context, so
// callers can classify any returned error with errors.Is:
//
//	if err := reg.AddBinary("missing"); errors.Is(err, errs.ErrDuplicateFlagName) {
//		// flag already registered
//	}
package errs

import "errors"

// Registry growth errors.
var (
	// ErrInvalidFlagName indicates an empty flag name.
	ErrInvalidFlagName = errors.New("invalid flag name")

	// ErrDuplicateFlagName indicates a flag with the same name is already
	// registered.
	ErrDuplicateFlagName = errors.New("duplicate flag name")

	// ErrBitRangeCollision indicates an explicitly positioned flag overlaps
	// a bit range owned by an existing flag.
	ErrBitRangeCollision = errors.New("bit range collision")

	// ErrFieldWidthExceeded indicates the registry layout does not fit the
	// widest supported field integer (64 bits).
	ErrFieldWidthExceeded = errors.New("field width exceeds 64 bits")

	// ErrRegistryFrozen indicates an attempt to grow a registry after an
	// encoder or decoder was constructed from it.
	ErrRegistryFrozen = errors.New("registry is frozen")

	// ErrInvalidCaseCount indicates a case flag was registered with fewer
	// than one case or more cases than the wire format can describe.
	ErrInvalidCaseCount = errors.New("invalid case count")

	// ErrInvalidNASentinel indicates a binary NA sentinel pattern that is
	// not distinct from the true/false codes.
	ErrInvalidNASentinel = errors.New("invalid NA sentinel pattern")

	// ErrInvalidCaseMode indicates an unrecognized case resolution mode.
	ErrInvalidCaseMode = errors.New("invalid case mode")

	// ErrInvalidPosition indicates a negative explicit bit position.
	ErrInvalidPosition = errors.New("invalid bit position")
)

// Codec errors.
var (
	// ErrUnknownPrecision indicates an unrecognized floating-point
	// precision name or value.
	ErrUnknownPrecision = errors.New("unknown precision")

	// ErrCountOverflow indicates a count value that does not fit the bit
	// width fixed for its flag.
	ErrCountOverflow = errors.New("count value overflows flag width")

	// ErrCaseConflict indicates more than one case predicate matched a
	// record under the strict case mode.
	ErrCaseConflict = errors.New("multiple case predicates matched")

	// ErrCaseOutOfRange indicates a case index outside [0, caseCount).
	ErrCaseOutOfRange = errors.New("case index out of range")

	// ErrInvalidFlagKind indicates an unrecognized flag kind value.
	ErrInvalidFlagKind = errors.New("invalid flag kind")
)

// Encoder errors.
var (
	// ErrEmptyRegistry indicates an encoder or marshaller was given a
	// registry with no flags.
	ErrEmptyRegistry = errors.New("registry has no flags")

	// ErrInvalidRecordCount indicates a non-positive record count.
	ErrInvalidRecordCount = errors.New("invalid record count")

	// ErrUnknownFlag indicates a flag name not present in the registry.
	ErrUnknownFlag = errors.New("unknown flag name")

	// ErrFlagKindMismatch indicates a raw column whose type does not match
	// the flag's kind.
	ErrFlagKindMismatch = errors.New("flag kind mismatch")

	// ErrLengthMismatch indicates a raw column whose length differs from
	// the encoder's record count.
	ErrLengthMismatch = errors.New("raw column length mismatch")

	// ErrMissingColumn indicates a registry flag that was never given a
	// raw column before Finish.
	ErrMissingColumn = errors.New("missing raw column for flag")

	// ErrEncoderFinished indicates an encoder was used after Finish.
	ErrEncoderFinished = errors.New("encoder already finished")
)

// Decoder errors.
var (
	// ErrInvalidFieldWidth indicates a field width outside [1, 64].
	ErrInvalidFieldWidth = errors.New("invalid field width")

	// ErrRegistryFieldMismatch indicates the registry's total width does
	// not match the encoded field's width.
	ErrRegistryFieldMismatch = errors.New("registry width does not match field width")

	// ErrInvalidSeparator indicates a lookup separator that is empty or
	// contains the digits '0' or '1'.
	ErrInvalidSeparator = errors.New("invalid lookup separator")
)

// Registry marshal/unmarshal errors.
var (
	// ErrInvalidHeaderSize indicates a registry blob shorter than its
	// fixed-size header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates a registry blob whose options word
	// does not carry the expected magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates a registry blob header with reserved
	// bits set or an out-of-range packed option.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidEntrySize indicates a truncated flag entry, or an entry
	// whose stored width disagrees with its kind and parameter.
	ErrInvalidEntrySize = errors.New("invalid flag entry")

	// ErrUnsupportedVersion indicates a registry blob written by an
	// unsupported format version.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrInvalidPayloadSize indicates a registry blob whose payload sizes
	// disagree with the actual data length.
	ErrInvalidPayloadSize = errors.New("invalid payload size")

	// ErrInvalidCompressionType indicates an unrecognized payload
	// compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrFingerprintMismatch indicates a registry whose recomputed layout
	// fingerprint differs from the stored or expected one.
	ErrFingerprintMismatch = errors.New("registry fingerprint mismatch")

	// ErrInvalidStringPayload indicates a truncated or malformed
	// length-prefixed string payload.
	ErrInvalidStringPayload = errors.New("invalid string payload")

	// ErrInvalidStringCount indicates a string payload count exceeding the
	// format maximum.
	ErrInvalidStringCount = errors.New("invalid string count")

	// ErrStringTooLong indicates a name or description exceeding the
	// format's length prefix.
	ErrStringTooLong = errors.New("string exceeds maximum length")

	// ErrHashMismatch indicates a flag name whose hash does not match the
	// name ID stored in its flag entry.
	ErrHashMismatch = errors.New("flag name hash mismatch")
)

// Package bitfield provides a compact binary codec for per-record metadata
// flags.
//
// Bitfield packs the QA and provenance outcomes of a record batch (missing
// checks, quality classifications, bounded counters, reduced-precision
// readings) into a single machine word per record. A registry declares the
// named flags and their bit layout, an encoder packs whole columns of
// outcomes into one []uint64 field, and a decoder unpacks them again or
// renders them for inspection.
//
// # Core Features
//
//   - Up to 64 flags per registry, packed into at most 64 bits per record
//   - Four flag kinds: binary, enumerated case, bounded count, and
//     reduced-precision numeric (half, single, double)
//   - Deterministic layout fingerprint (64-bit xxHash64) that pairs encoded
//     fields with the registry that produced them
//   - Self-describing registry blobs with optional compression
//     (None, Zstd, S2, LZ4)
//   - Column-oriented encode and decode for whole batches at once
//
// # Basic Usage
//
// Declaring a layout and encoding a batch:
//
//	import "github.com/arloliu/bitfield"
//
//	// Declare the layout once; flags occupy bits in declaration order.
//	reg := bitfield.NewRegistry("sensor_qa", "per-sample QA flags")
//	reg.AddBinary("missing")
//	reg.AddCases("quality", 3)
//	reg.AddCountMax("run_length", 7)
//	reg.AddNumeric("raw", format.PrecisionHalf)
//
//	// Stage one column per flag, then pack.
//	enc, _ := bitfield.NewEncoder(reg, len(samples))
//	enc.PutBinary("missing", missingCol)
//	enc.PutCaseIndexes("quality", qualityCol)
//	enc.PutCounts("run_length", runCol)
//	enc.PutNumerics("raw", rawCol)
//	f, _ := enc.Finish()
//
// Decoding a field:
//
//	dec, _ := bitfield.NewDecoder(reg, f)
//	decoded, _ := dec.Decode()
//	missing, _ := decoded.Bools("missing")
//	quality, _ := decoded.Cases("quality")
//
// Persisting the layout alongside the encoded words:
//
//	data, _ := reg.Marshal()
//	restored, _ := bitfield.UnmarshalRegistry(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the registry
// and field packages, simplifying the most common use cases. For advanced
// usage and fine-grained control, use the registry and field packages
// directly.
package bitfield

import (
	"github.com/arloliu/bitfield/encoding"
	"github.com/arloliu/bitfield/field"
	"github.com/arloliu/bitfield/internal/hash"
	"github.com/arloliu/bitfield/registry"
)

// CaseNone is the case index of a record that activates no case of a case
// flag. Encoder.PutCaseIndexes accepts it (any negative index encodes the
// reserved no-case code) and Decoded.Cases reports it.
const CaseNone = encoding.CaseNone

// NewRegistry creates an empty flag registry.
//
// A registry names a bit layout and accumulates flag declarations through
// its Add methods. Each flag occupies the bits immediately after the last
// registered flag unless registry.WithPosition places it explicitly. The
// combined width of all flags must stay within 64 bits.
//
// Parameters:
//   - name: Identifies the layout; it contributes to the fingerprint and is
//     stored in the marshalled form.
//   - description: Optional human-readable text; stored but excluded from
//     the fingerprint.
//
// Example:
//
//	reg := bitfield.NewRegistry("sensor_qa", "per-sample QA flags")
//	err := reg.AddBinary("missing",
//	    registry.WithDescription("no reading arrived in the window"),
//	)
func NewRegistry(name, description string) *registry.Registry {
	return registry.New(name, description)
}

// UnmarshalRegistry reconstructs a registry from its marshalled form.
//
// The blob is self-describing: byte order and compression are read from the
// header, flag names are verified against their stored hashes, and the
// layout fingerprint is recomputed and compared to the stored one. Any
// disagreement fails with an error rather than yielding a registry that
// silently decodes fields under the wrong layout.
//
// The returned registry is not frozen, so more flags may be appended before
// it encodes or decodes fields.
//
// Parameters:
//   - data: The raw blob bytes (from Registry.Marshal or storage).
//
// Returns:
//   - *registry.Registry: The reconstructed registry.
//   - error: An error if the blob is truncated, corrupted, or inconsistent.
//
// Example:
//
//	restored, err := bitfield.UnmarshalRegistry(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(restored.Describe())
func UnmarshalRegistry(data []byte) (*registry.Registry, error) {
	return registry.Unmarshal(data)
}

// NewEncoder creates an encoder that packs record columns under the given
// registry's layout.
//
// The encoder is column-oriented: stage exactly one column per registered
// flag with the Put method matching the flag's kind, then call Finish to
// pack every record into one uint64 word. Creating an encoder freezes the
// registry so the layout cannot shift under staged columns.
//
// Parameters:
//   - reg: The registry declaring the layout. Must contain at least one flag.
//   - recordCount: The number of records in every staged column.
//
// Returns:
//   - *field.Encoder: The created encoder.
//   - error: An error if the registry is empty or recordCount is not positive.
//
// Available Put methods:
//   - PutBinary / PutBinaryNA for binary flags
//   - PutCases / PutCaseIndexes for case flags
//   - PutCounts for count flags
//   - PutNumerics for numeric flags
//
// Example:
//
//	enc, err := bitfield.NewEncoder(reg, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enc.PutBinary("missing", missingCol)
//	enc.PutCounts("run_length", runCol)
//	f, err := enc.Finish()
func NewEncoder(reg *registry.Registry, recordCount int) (*field.Encoder, error) {
	return field.NewEncoder(reg, recordCount)
}

// NewDecoder creates a decoder that unpacks a field under the given
// registry's layout.
//
// The decoder verifies that the field's width matches the registry's total
// width, and that the field's fingerprint (when it carries one) matches the
// registry's. Creating a decoder freezes the registry.
//
// Parameters:
//   - reg: The registry declaring the layout.
//   - f: The field to decode (from Encoder.Finish or bitfield.NewField).
//   - opts: Optional configuration functions (see field.DecoderOption).
//
// Returns:
//   - *field.Decoder: The created decoder.
//   - error: An error if the field does not belong to the registry's layout.
//
// Available options:
//   - field.WithoutFingerprintCheck()
//
// The decoder provides three access patterns:
//  1. Full decode: dec.Decode() - one typed column per flag
//  2. Rendering: dec.Lookup("|") - one binary string per record
//  3. Raw codes: dec.Codes(name) - the undecoded codes of one flag
//
// Example:
//
//	dec, err := bitfield.NewDecoder(reg, f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	decoded, err := dec.Decode()
//	counts, _ := decoded.Counts("run_length")
func NewDecoder(reg *registry.Registry, f *field.Field, opts ...field.DecoderOption) (*field.Decoder, error) {
	return field.NewDecoder(reg, f, opts...)
}

// NewField wraps previously encoded words so they can be decoded again.
//
// Use this when the words produced by Encoder.Finish were persisted and read
// back. A restored field carries no fingerprint, so NewDecoder pairs it with
// a registry on width alone; keep the marshalled registry next to the words
// when layout identity matters.
//
// Parameters:
//   - width: The total layout width in bits, in [1, 64].
//   - values: One packed word per record. The field shares the slice.
//
// Returns:
//   - *field.Field: The wrapped field.
//   - error: An error if the width is out of range or values is empty.
//
// Example:
//
//	f, err := bitfield.NewField(reg.TotalWidth(), words)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dec, err := bitfield.NewDecoder(reg, f)
func NewField(width int, values []uint64) (*field.Field, error) {
	return field.NewField(width, values)
}

// FlagID converts a flag name to its 64-bit hash identifier.
//
// Marshalled registries store each flag's name as an xxHash64 NameID next to
// the name itself, and unmarshalling verifies the two agree. Use this
// function to compute the same ID outside the codec, for example to key an
// external index by flag or to cross-check entries in a stored blob.
//
// The hash function guarantees:
//   - Deterministic: same name always produces same ID
//   - Collision-resistant: extremely low probability of collisions
//   - Fast: a few nanoseconds per hash on modern CPUs
//
// Example:
//
//	id := bitfield.FlagID("quality")
func FlagID(name string) uint64 {
	return hash.ID(name)
}

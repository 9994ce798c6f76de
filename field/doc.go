// Package field packs per-record flag columns into single-uint64 fields
// and unpacks them again.
//
// # Encoding
//
// The Encoder is staged: stage every registry flag's raw column with the
// Put method matching its kind, then pack once:
//
//	enc, err := field.NewEncoder(reg, len(readings))
//	_ = enc.PutBinary("missing", missingColumn)
//	_ = enc.PutCases("quality", qualityGood, qualityFair, qualityPoor)
//	_ = enc.PutCounts("run_length", runLengths)
//	_ = enc.PutNumerics("raw", readings)
//	f, err := enc.Finish()
//
// Finish verifies that no flag was left unstaged and emits one uint64 per
// record. Bits fill from the most significant side in registry bit order:
// the first-declared flag is the leftmost when a record is printed as a
// bit string.
//
// # Decoding
//
// The Decoder reverses the packing after checking that the registry and
// field agree on total width and, when known, on the layout fingerprint:
//
//	dec, err := field.NewDecoder(reg, f)
//	decoded, err := dec.Decode()
//	missing, err := decoded.Bools("missing")
//
// Lookup renders records as separated bit strings ("0|10|101|0100...")
// for audits, and Codes exposes one flag's raw stored codes.
//
// # Persistence
//
// Fields hold plain uint64 columns; storing them is the caller's concern.
// NewField rebuilds a Field from a stored column and its bit width. The
// rebuilt field has no fingerprint, so the decoder's layout check falls
// back to width alone.
package field

// Package registry implements the flag registry: the named bit layout
// that gives every QA/provenance flag of a record its position, width,
// and codec parameters inside a single packed field.
//
// # Building a Layout
//
// A registry starts empty and grows one flag per Add call. Widths are
// never chosen by the caller; each kind derives its own minimal width:
//
//	reg := registry.New("sensor_qa", "per-record quality flags")
//	_ = reg.AddBinary("missing", registry.WithDescription("no reading arrived"))
//	_ = reg.AddCases("quality", 3)                 // 2 bits: 3 cases + no-case code
//	_ = reg.AddCountMax("run_length", 7)           // 3 bits
//	_ = reg.AddNumeric("raw", format.PrecisionHalf) // 16 bits
//
// Flags pack tightly in declaration order from the most significant side
// of the field; the first flag added owns bit 0. WithPosition pins a flag
// to an explicit bit range instead, and colliding ranges are rejected.
// Every failed Add leaves the registry unchanged.
//
// The layout is capped at 64 bits so one uint64 holds all flags of a
// record.
//
// # Lifecycle
//
// Constructing an encoder or decoder freezes the registry. A frozen
// registry rejects further growth, which keeps already-encoded fields
// decodable against it. Frozen registries are safe for concurrent reads.
//
// # Identity
//
// Fingerprint reduces the layout (names, kinds, positions, widths, codec
// parameters) to a 64-bit hash. Encoded fields and marshalled blobs carry
// the fingerprint so layout drift between writer and reader surfaces as
// an error instead of silently misread flags.
//
// # Persistence
//
// Marshal serializes a registry into a compact self-describing blob and
// Unmarshal rebuilds it, verifying the fingerprint and per-flag name
// hashes on the way in. Blob byte order and payload compression are
// configurable per call and recorded in the blob itself.
package registry

// Package compress provides compression codecs for marshalled registry payloads.
//
// A marshalled registry stores its flag names and descriptions as two
// length-prefixed string payloads. This package compresses those payloads
// before they are written into the blob and restores them when the blob is
// unmarshalled. The fixed-size header and flag entries are never compressed;
// only the string payloads are.
//
// # Overview
//
// Four algorithms are supported, selected per blob via the marshal options
// and recorded in the blob header so unmarshalling is self-describing:
//   - None: No compression (byte-inspectable blobs, smallest registries)
//   - Zstd: Best ratio, the default for marshalled registries
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are obtained from the compression type recorded in a blob:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	payload, err := codec.Decompress(compressedNames)
//
// # Choosing a Codec
//
// Registry payloads are small and text-heavy. Flag names within one registry
// usually share prefixes (error_, qc_, has_) and descriptions share phrasing,
// so all three real codecs achieve useful ratios:
//   - Zstd: best ratio, use unless marshalling is on a hot path
//   - S2 and LZ4: near-instant, use when registries are marshalled per request
//   - None: use when blobs must remain greppable or the registry has only a
//     handful of tersely named flags
//
// # Zstd Build Modes
//
// The Zstd codec has two implementations selected by build tags. With cgo
// available it uses the valyala/gozstd bindings to libzstd; with
// CGO_ENABLED=0 or the purego tag it uses the pure Go
// klauspost/compress/zstd. Both emit standard Zstd frames and interoperate.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Internal
// encoder and decoder pools are synchronized.
package compress

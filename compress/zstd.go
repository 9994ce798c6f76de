package compress

// ZstdCompressor provides Zstandard compression for registry payloads.
//
// Zstd is the default codec for marshalled registries. Flag names and
// descriptions share long common substrings, which Zstd exploits well even at
// the small payload sizes a registry produces.
//
// Two implementations exist behind build tags:
//   - cgo builds use the valyala/gozstd bindings to libzstd
//   - pure Go builds (CGO_ENABLED=0 or -tags purego) use klauspost/compress/zstd
//
// Both produce standard Zstd frames, so blobs written by one build decode in
// the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

package registry

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
	"github.com/arloliu/bitfield/section"
)

// buildWideRegistry exercises every flag kind and parameter in one 64-bit
// layout.
func buildWideRegistry(t *testing.T) *Registry {
	t.Helper()

	reg := New("ingest_audit", "per-record provenance for the ingest pipeline")
	require.NoError(t, reg.AddBinary("interpolated", WithDescription("value was gap-filled")))
	require.NoError(t, reg.AddBinaryNA("range_check", WithNASentinel(0b11), WithDescription("bounds test outcome")))
	require.NoError(t, reg.AddCases("source", 5, WithCaseMode(format.CaseLastWins), WithDescription("ingest channel (通道)")))
	require.NoError(t, reg.AddCases("parity", 2, WithCaseMode(format.CaseStrict)))
	require.NoError(t, reg.AddCountMax("retries", 255))
	require.NoError(t, reg.AddNumeric("drift", format.PrecisionHalf))
	require.NoError(t, reg.AddNumeric("confidence", format.PrecisionSingle))
	require.Equal(t, 64, reg.TotalWidth())

	return reg
}

// requireSameRegistry asserts that two registries describe the same layout,
// flag by flag.
func requireSameRegistry(t *testing.T, want, got *Registry) {
	t.Helper()

	require.Equal(t, want.Name(), got.Name())
	require.Equal(t, want.Description(), got.Description())
	require.Equal(t, want.Len(), got.Len())
	require.Equal(t, want.TotalWidth(), got.TotalWidth())
	require.Equal(t, want.Fingerprint(), got.Fingerprint())

	for i := range want.Len() {
		wf, gf := want.FlagAt(i), got.FlagAt(i)
		require.Equal(t, wf.Name(), gf.Name())
		require.Equal(t, wf.Description(), gf.Description())
		require.Equal(t, wf.Kind(), gf.Kind())
		require.Equal(t, wf.Start(), gf.Start())
		require.Equal(t, wf.Width(), gf.Width())
		require.Equal(t, wf.NASentinel(), gf.NASentinel())
		require.Equal(t, wf.CaseCount(), gf.CaseCount())
		require.Equal(t, wf.CaseMode(), gf.CaseMode())
		require.Equal(t, wf.MaxCount(), gf.MaxCount())
		require.Equal(t, wf.Precision(), gf.Precision())
	}
}

func TestRegistry_Marshal_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		for _, bigEndian := range []bool{false, true} {
			name := fmt.Sprintf("%s little-endian", compression)
			opts := []MarshalOption{WithCompression(compression), WithLittleEndian()}
			if bigEndian {
				name = fmt.Sprintf("%s big-endian", compression)
				opts = []MarshalOption{WithCompression(compression), WithBigEndian()}
			}

			t.Run(name, func(t *testing.T) {
				reg := buildWideRegistry(t)

				blob, err := reg.Marshal(opts...)
				require.NoError(t, err)

				got, err := Unmarshal(blob)
				require.NoError(t, err)
				requireSameRegistry(t, reg, got)
			})
		}
	}
}

func TestRegistry_Marshal_RoundTrip_GapLayout(t *testing.T) {
	reg := New("sparse", "")
	require.NoError(t, reg.AddBinary("tail", WithPosition(10)))
	require.NoError(t, reg.AddCases("head", 3, WithPosition(0)))

	blob, err := reg.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(blob)
	require.NoError(t, err)
	requireSameRegistry(t, reg, got)
	require.Equal(t, 11, got.TotalWidth())
}

func TestRegistry_Marshal_Empty(t *testing.T) {
	_, err := New("empty", "").Marshal()
	require.ErrorIs(t, err, errs.ErrEmptyRegistry)
}

func TestRegistry_Marshal_InvalidCompression(t *testing.T) {
	_, err := buildSensorRegistry(t).Marshal(WithCompression(format.CompressionType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestRegistry_Marshal_FrozenRegistry(t *testing.T) {
	reg := buildSensorRegistry(t)
	reg.Freeze()

	blob, err := reg.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(blob)
	require.NoError(t, err)
	requireSameRegistry(t, reg, got)

	// The rebuilt registry is a fresh, unfrozen value.
	require.False(t, got.Frozen())
	require.NoError(t, got.AddBinary("late"))
	require.NotEqual(t, reg.Fingerprint(), got.Fingerprint())
}

func TestRegistry_Marshal_Deterministic(t *testing.T) {
	reg := buildWideRegistry(t)

	first, err := reg.Marshal(WithCompression(format.CompressionNone))
	require.NoError(t, err)
	second, err := reg.Marshal(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRegistry_Marshal_BlobLayout(t *testing.T) {
	reg := buildSensorRegistry(t)

	blob, err := reg.Marshal(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	header, err := section.ParseRegistryHeader(blob)
	require.NoError(t, err)
	require.Equal(t, uint8(section.FormatVersion), header.Version)
	require.Equal(t, reg.Len(), header.FlagCount)
	require.Equal(t, reg.TotalWidth(), header.TotalWidth)
	require.Equal(t, reg.Fingerprint(), header.Fingerprint)
	require.Equal(t, format.CompressionNone, header.Flag.Compression())
	require.True(t, header.Flag.IsLittleEndian())
	require.Equal(t, len(blob), header.TotalSize())

	// Uncompressed payloads keep the strings readable in the blob.
	require.True(t, bytes.Contains(blob, []byte("sensor_qa")))
	require.True(t, bytes.Contains(blob, []byte("run_length")))
	require.True(t, bytes.Contains(blob, []byte("pipeline quality tier")))
}

func TestRegistry_Marshal_CompressionShrinksDescriptions(t *testing.T) {
	reg := New("stage_errors", "per-stage rejection flags")
	for i := range 60 {
		require.NoError(t, reg.AddBinary(
			fmt.Sprintf("error_%02d", i),
			WithDescription(fmt.Sprintf("raised when stage %02d rejects the record on replay", i)),
		))
	}

	raw, err := reg.Marshal(WithCompression(format.CompressionNone))
	require.NoError(t, err)
	compressed, err := reg.Marshal(WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	require.Less(t, len(compressed), len(raw))
}

func TestUnmarshal_CorruptedBlob(t *testing.T) {
	reg := buildSensorRegistry(t)
	blob, err := reg.Marshal(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	// Entry i sits at 24+16*i; within an entry the start field is at +12,
	// the kind byte at +14 and the width byte at +15.
	tests := []struct {
		name    string
		corrupt func(b []byte) []byte
		wantErr error
	}{
		{
			name:    "truncated header",
			corrupt: func(b []byte) []byte { return b[:section.RegistryHeaderSize-1] },
			wantErr: errs.ErrInvalidHeaderSize,
		},
		{
			name: "magic number",
			corrupt: func(b []byte) []byte {
				b[1] ^= 0x80
				return b
			},
			wantErr: errs.ErrInvalidMagicNumber,
		},
		{
			name: "compression bits",
			corrupt: func(b []byte) []byte {
				b[0] |= 0x0E
				return b
			},
			wantErr: errs.ErrInvalidHeaderFlags,
		},
		{
			name: "format version",
			corrupt: func(b []byte) []byte {
				b[2] = 99
				return b
			},
			wantErr: errs.ErrUnsupportedVersion,
		},
		{
			name: "zero flag count",
			corrupt: func(b []byte) []byte {
				b[3] = 0
				return b
			},
			wantErr: errs.ErrInvalidHeaderFlags,
		},
		{
			name: "flag count above the format maximum",
			corrupt: func(b []byte) []byte {
				b[3] = section.MaxFlagCount + 1
				return b
			},
			wantErr: errs.ErrInvalidHeaderFlags,
		},
		{
			name: "total width disagrees with the entries",
			corrupt: func(b []byte) []byte {
				b[4] = 23
				return b
			},
			wantErr: errs.ErrInvalidHeaderFlags,
		},
		{
			name: "reserved bytes set",
			corrupt: func(b []byte) []byte {
				b[6] = 1
				return b
			},
			wantErr: errs.ErrInvalidHeaderFlags,
		},
		{
			name: "stored fingerprint",
			corrupt: func(b []byte) []byte {
				b[16] ^= 0xFF
				return b
			},
			wantErr: errs.ErrFingerprintMismatch,
		},
		{
			name:    "truncated payload",
			corrupt: func(b []byte) []byte { return b[:len(b)-1] },
			wantErr: errs.ErrInvalidPayloadSize,
		},
		{
			name:    "trailing bytes",
			corrupt: func(b []byte) []byte { return append(b, 0x00) },
			wantErr: errs.ErrInvalidPayloadSize,
		},
		{
			name: "entry kind",
			corrupt: func(b []byte) []byte {
				b[24+14] = 0xEE
				return b
			},
			wantErr: errs.ErrInvalidFlagKind,
		},
		{
			name: "entry width disagrees with its kind",
			corrupt: func(b []byte) []byte {
				b[24+15] = 7
				return b
			},
			wantErr: errs.ErrInvalidEntrySize,
		},
		{
			name: "entry start moved onto another flag",
			corrupt: func(b []byte) []byte {
				b[24+16+12] = 0 // the case flag now collides with the binary flag at bit 0
				return b
			},
			wantErr: errs.ErrBitRangeCollision,
		},
		{
			name: "flag name byte",
			corrupt: func(b []byte) []byte {
				idx := bytes.Index(b, []byte("quality"))
				require.Positive(t, idx)
				b[idx] = 'Q'
				return b
			},
			wantErr: errs.ErrHashMismatch,
		},
		{
			name: "registry name byte",
			corrupt: func(b []byte) []byte {
				idx := bytes.Index(b, []byte("sensor_qa"))
				require.Positive(t, idx)
				b[idx] = 'S'
				return b
			},
			wantErr: errs.ErrFingerprintMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corrupted := tt.corrupt(bytes.Clone(blob))
			_, err := Unmarshal(corrupted)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnmarshal_CorruptedCompressedPayload(t *testing.T) {
	reg := buildSensorRegistry(t)
	blob, err := reg.Marshal(WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	header, err := section.ParseRegistryHeader(blob)
	require.NoError(t, err)

	corrupted := bytes.Clone(blob)
	for i := header.NamesOffset(); i < header.DescriptionsOffset(); i++ {
		corrupted[i] ^= 0xA5
	}

	_, err = Unmarshal(corrupted)
	require.Error(t, err)
	require.Contains(t, err.Error(), "names payload")
}

package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitfield/endian"
	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/internal/hash"
)

func TestEncodeStrings(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	data, err := EncodeStrings([]string{"missing", "quality"}, engine)
	require.NoError(t, err)

	// count + (len + "missing") + (len + "quality")
	require.Len(t, data, 2+2+7+2+7)
	require.Equal(t, uint16(2), engine.Uint16(data))
	require.Equal(t, uint16(7), engine.Uint16(data[2:]))
	require.Equal(t, "missing", string(data[4:11]))
	require.Equal(t, uint16(7), engine.Uint16(data[11:]))
	require.Equal(t, "quality", string(data[13:20]))
}

func TestEncodeStrings_Empty(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	data, err := EncodeStrings(nil, engine)
	require.NoError(t, err)
	require.Len(t, data, 2)
	require.Equal(t, uint16(0), engine.Uint16(data))
}

func TestEncodeStrings_EmptyStrings(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	data, err := EncodeStrings([]string{"", "a", ""}, engine)
	require.NoError(t, err)

	decoded, consumed, err := DecodeStrings(data, engine)
	require.NoError(t, err)
	require.Equal(t, len(data), consumed)
	require.Equal(t, []string{"", "a", ""}, decoded)
}

func TestEncodeStrings_TooLong(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := EncodeStrings([]string{strings.Repeat("x", MaxStringLength+1)}, engine)
	require.ErrorIs(t, err, errs.ErrStringTooLong)
}

func TestEncodeStrings_MaxLength(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	longest := strings.Repeat("x", MaxStringLength)

	data, err := EncodeStrings([]string{longest}, engine)
	require.NoError(t, err)

	decoded, _, err := DecodeStrings(data, engine)
	require.NoError(t, err)
	require.Equal(t, longest, decoded[0])
}

func TestDecodeStrings_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{name: "typical flag names", values: []string{"missing", "quality", "run_length", "value"}},
		{name: "single", values: []string{"flag"}},
		{name: "none", values: []string{}},
		{name: "unicode", values: []string{"温度", "flag-β", "plain"}},
		{name: "descriptions with spaces", values: []string{"set when the reading was absent", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
				data, err := EncodeStrings(tt.values, engine)
				require.NoError(t, err)

				decoded, consumed, err := DecodeStrings(data, engine)
				require.NoError(t, err)
				require.Equal(t, len(data), consumed)

				if len(tt.values) == 0 {
					require.Empty(t, decoded)
				} else {
					require.Equal(t, tt.values, decoded)
				}
			}
		})
	}
}

func TestDecodeStrings_TrailingBytesIgnored(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	data, err := EncodeStrings([]string{"flag"}, engine)
	require.NoError(t, err)

	payloadLen := len(data)
	data = append(data, 0xDE, 0xAD)

	decoded, consumed, err := DecodeStrings(data, engine)
	require.NoError(t, err)
	require.Equal(t, payloadLen, consumed)
	require.Equal(t, []string{"flag"}, decoded)
}

func TestDecodeStrings_Truncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	data, err := EncodeStrings([]string{"missing", "quality"}, engine)
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: nil},
		{name: "partial count", data: data[:1]},
		{name: "missing length prefix", data: data[:3]},
		{name: "partial string body", data: data[:8]},
		{name: "second string cut off", data: data[:len(data)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeStrings(tt.data, engine)
			require.ErrorIs(t, err, errs.ErrInvalidStringPayload)
		})
	}
}

func TestVerifyNameHashes(t *testing.T) {
	names := []string{"missing", "quality", "run_length"}
	ids := make([]uint64, len(names))
	for i, name := range names {
		ids[i] = hash.ID(name)
	}

	require.NoError(t, VerifyNameHashes(names, ids, hash.ID))
}

func TestVerifyNameHashes_Mismatch(t *testing.T) {
	names := []string{"missing", "quality"}
	ids := []uint64{hash.ID("missing"), hash.ID("corrupted")}

	err := VerifyNameHashes(names, ids, hash.ID)
	require.ErrorIs(t, err, errs.ErrHashMismatch)
	require.Contains(t, err.Error(), "quality")
}

func TestVerifyNameHashes_CountMismatch(t *testing.T) {
	err := VerifyNameHashes([]string{"a", "b"}, []uint64{hash.ID("a")}, hash.ID)
	require.ErrorIs(t, err, errs.ErrInvalidStringCount)
}

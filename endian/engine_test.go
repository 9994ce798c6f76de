package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	// Verify the result against the actual memory layout of the host.
	var probe uint16 = 0x0102
	probeBytes := (*[2]byte)(unsafe.Pointer(&probe))

	switch probeBytes[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, result)
	case 0x02:
		require.Equal(t, binary.LittleEndian, result)
	default:
		t.Fatalf("unexpected probe byte %#x", probeBytes[0])
	}

	// Stable across calls.
	for range 10 {
		require.Equal(t, result, CheckEndianness())
	}
}

func TestIsNativeEndianness(t *testing.T) {
	little := IsNativeLittleEndian()
	big := IsNativeBigEndian()

	require.NotEqual(t, little, big, "native endianness checks should be inverses")
	require.Equal(t, little, CheckEndianness() == binary.LittleEndian)
	require.Equal(t, big, CheckEndianness() == binary.BigEndian)
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	buf := make([]byte, 2)
	engine.PutUint16(buf, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, buf, "little endian puts LSB first")
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	buf := make([]byte, 2)
	engine.PutUint16(buf, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, buf, "big endian puts MSB first")
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestEndianEngines_RoundTrip(t *testing.T) {
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	var value uint64 = 0x0102030405060708
	littleBuf := littleEngine.AppendUint64(nil, value)
	bigBuf := bigEngine.AppendUint64(nil, value)

	require.NotEqual(t, littleBuf, bigBuf, "byte representations should differ")
	require.Equal(t, value, littleEngine.Uint64(littleBuf))
	require.Equal(t, value, bigEngine.Uint64(bigBuf))
}

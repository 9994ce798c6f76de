package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitfield/errs"
)

func TestCountWidth(t *testing.T) {
	tests := []struct {
		maxValue uint64
		want     int
	}{
		{maxValue: 0, want: 1},
		{maxValue: 1, want: 1},
		{maxValue: 2, want: 2},
		{maxValue: 3, want: 2},
		{maxValue: 7, want: 3},
		{maxValue: 8, want: 4},
		{maxValue: 255, want: 8},
		{maxValue: 256, want: 9},
		{maxValue: math.MaxUint64, want: 64},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, CountWidth(tt.maxValue), "maxValue=%d", tt.maxValue)
	}
}

func TestMaxCount(t *testing.T) {
	require.Equal(t, uint64(1), MaxCount(1))
	require.Equal(t, uint64(3), MaxCount(2))
	require.Equal(t, uint64(7), MaxCount(3))
	require.Equal(t, uint64(255), MaxCount(8))
	require.Equal(t, uint64(math.MaxUint64), MaxCount(64))
}

func TestEncodeCount(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		width int
		want  uint64
	}{
		{name: "zero", value: 0, width: 3, want: 0},
		{name: "mid range", value: 5, width: 3, want: 5},
		{name: "exact max", value: 7, width: 3, want: 7},
		{name: "single bit", value: 1, width: 1, want: 1},
		{name: "full width", value: math.MaxUint64, width: 64, want: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := EncodeCount(tt.value, tt.width)
			require.NoError(t, err)
			require.Equal(t, tt.want, code)
		})
	}
}

func TestEncodeCount_Overflow(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		width int
	}{
		{name: "one above max", value: 8, width: 3},
		{name: "far above max", value: 1000, width: 3},
		{name: "two in one bit", value: 2, width: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeCount(tt.value, tt.width)
			require.ErrorIs(t, err, errs.ErrCountOverflow)
		})
	}
}

func TestDecodeCount(t *testing.T) {
	require.Equal(t, uint64(0), DecodeCount(0))
	require.Equal(t, uint64(5), DecodeCount(5))
	require.Equal(t, uint64(math.MaxUint64), DecodeCount(math.MaxUint64))
}

func TestEncodeCount_RoundTrip(t *testing.T) {
	// Every value up to the declared maximum fits, and the first value past
	// the maximum of a full width overflows.
	for _, maxValue := range []uint64{0, 1, 5, 7, 8, 255} {
		width := CountWidth(maxValue)

		for value := uint64(0); value <= maxValue; value++ {
			code, err := EncodeCount(value, width)
			require.NoError(t, err)
			require.Equal(t, value, DecodeCount(code))
		}

		_, err := EncodeCount(MaxCount(width)+1, width)
		require.ErrorIs(t, err, errs.ErrCountOverflow)
	}
}

package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendBits(t *testing.T) {
	tests := []struct {
		name  string
		code  uint64
		width int
		want  string
	}{
		{name: "single zero bit", code: 0, width: 1, want: "0"},
		{name: "single one bit", code: 1, width: 1, want: "1"},
		{name: "leading zeros kept", code: 0b101, width: 5, want: "00101"},
		{name: "exact width", code: 0b101, width: 3, want: "101"},
		{name: "half code", code: 0x4340, width: 16, want: "0100001101000000"},
		{name: "all ones", code: 0b1111, width: 4, want: "1111"},
		{name: "zero width", code: 0, width: 0, want: ""},
		{name: "full 64 bits", code: 1, width: 64, want: "0000000000000000000000000000000000000000000000000000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendBits(nil, tt.code, tt.width)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestAppendBits_AppendsToExisting(t *testing.T) {
	buf := []byte("prefix|")
	buf = AppendBits(buf, 0b10, 2)
	buf = append(buf, '|')
	buf = AppendBits(buf, 0b101, 3)

	require.Equal(t, "prefix|10|101", string(buf))
}

func TestAppendBits_IgnoresBitsAboveWidth(t *testing.T) {
	// Only the low width bits participate.
	require.Equal(t, "01", string(AppendBits(nil, 0b1101, 2)))
}

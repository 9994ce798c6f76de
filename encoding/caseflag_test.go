package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
)

func TestCaseWidth(t *testing.T) {
	tests := []struct {
		caseCount int
		want      int
	}{
		{caseCount: 1, want: 1},
		{caseCount: 2, want: 2},
		{caseCount: 3, want: 2},
		{caseCount: 4, want: 3}, // 4 cases + no-case needs 5 states
		{caseCount: 7, want: 3},
		{caseCount: 8, want: 4},
		{caseCount: 15, want: 4},
		{caseCount: 16, want: 5},
		{caseCount: 255, want: 8},
		{caseCount: 256, want: 9},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, CaseWidth(tt.caseCount), "caseCount=%d", tt.caseCount)
	}
}

func TestNoCaseCode(t *testing.T) {
	require.Equal(t, uint64(0b1), NoCaseCode(1))
	require.Equal(t, uint64(0b11), NoCaseCode(2))
	require.Equal(t, uint64(0b111), NoCaseCode(3))
	require.Equal(t, uint64(0xFF), NoCaseCode(8))
}

func TestNoCaseCode_AboveAllCaseIndexes(t *testing.T) {
	// The reserved code must sit above every encodable case index, including
	// at exact powers of two where one fewer bit would alias case 0.
	for _, caseCount := range []int{1, 2, 3, 4, 7, 8, 16, 100} {
		width := CaseWidth(caseCount)
		noCase := NoCaseCode(width)

		require.GreaterOrEqual(t, noCase, uint64(caseCount)) //nolint: gosec
	}
}

func TestResolveCase_FirstWins(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []bool
		want     int
	}{
		{name: "no match", outcomes: []bool{false, false, false}, want: CaseNone},
		{name: "single match", outcomes: []bool{false, true, false}, want: 1},
		{name: "multiple matches keep first", outcomes: []bool{false, true, true}, want: 1},
		{name: "all match", outcomes: []bool{true, true, true}, want: 0},
		{name: "empty", outcomes: nil, want: CaseNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := ResolveCase(tt.outcomes, format.CaseFirstWins)
			require.NoError(t, err)
			require.Equal(t, tt.want, index)
		})
	}
}

func TestResolveCase_LastWins(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []bool
		want     int
	}{
		{name: "no match", outcomes: []bool{false, false, false}, want: CaseNone},
		{name: "single match", outcomes: []bool{false, true, false}, want: 1},
		{name: "multiple matches keep last", outcomes: []bool{true, false, true}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := ResolveCase(tt.outcomes, format.CaseLastWins)
			require.NoError(t, err)
			require.Equal(t, tt.want, index)
		})
	}
}

func TestResolveCase_Strict(t *testing.T) {
	t.Run("single match", func(t *testing.T) {
		index, err := ResolveCase([]bool{false, false, true}, format.CaseStrict)
		require.NoError(t, err)
		require.Equal(t, 2, index)
	})

	t.Run("no match", func(t *testing.T) {
		index, err := ResolveCase([]bool{false, false}, format.CaseStrict)
		require.NoError(t, err)
		require.Equal(t, CaseNone, index)
	})

	t.Run("conflict", func(t *testing.T) {
		_, err := ResolveCase([]bool{false, true, false, true}, format.CaseStrict)
		require.ErrorIs(t, err, errs.ErrCaseConflict)
		require.Contains(t, err.Error(), "cases 1 and 3")
	})
}

func TestResolveCase_DefaultsToFirstWins(t *testing.T) {
	index, err := ResolveCase([]bool{true, true}, 0)
	require.NoError(t, err)
	require.Equal(t, 0, index)
}

func TestEncodeCase(t *testing.T) {
	width := CaseWidth(3) // 2 bits

	require.Equal(t, uint64(0b00), EncodeCase(0, width))
	require.Equal(t, uint64(0b01), EncodeCase(1, width))
	require.Equal(t, uint64(0b10), EncodeCase(2, width))
	require.Equal(t, uint64(0b11), EncodeCase(CaseNone, width))
}

func TestDecodeCase(t *testing.T) {
	tests := []struct {
		name      string
		code      uint64
		caseCount int
		want      int
	}{
		{name: "first case", code: 0b00, caseCount: 3, want: 0},
		{name: "last case", code: 0b10, caseCount: 3, want: 2},
		{name: "reserved no-case code", code: 0b11, caseCount: 3, want: CaseNone},
		{name: "out-of-range code maps to no-case", code: 0b11, caseCount: 2, want: CaseNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DecodeCase(tt.code, tt.caseCount))
		})
	}
}

func TestEncodeCase_RoundTrip(t *testing.T) {
	for _, caseCount := range []int{1, 2, 3, 4, 7, 8, 100} {
		width := CaseWidth(caseCount)

		for index := range caseCount {
			code := EncodeCase(index, width)
			require.Equal(t, index, DecodeCase(code, caseCount))
		}

		noCase := EncodeCase(CaseNone, width)
		require.Equal(t, CaseNone, DecodeCase(noCase, caseCount))
	}
}

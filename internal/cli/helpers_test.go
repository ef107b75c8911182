package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/types"
)

func TestParseRowID(t *testing.T) {
	tests := []struct {
		input   string
		want    types.RowID
		wantErr bool
	}{
		{"row-0", "row-0", false},
		{"row-12", "row-12", false},
		{"3", "row-3", false},
		{" row-4 ", "row-4", false},
		{"-1", "", true},
		{"row-", "", true},
		{"row-x", "", true},
		{"r-1", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRowID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColumn(t *testing.T) {
	n, err := ParseColumn("7")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	for _, bad := range []string{"-1", "one", "", "1.5"} {
		_, err := ParseColumn(bad)
		assert.ErrorIs(t, err, ErrInvalidArgument, bad)
	}
}

func TestParseDelta(t *testing.T) {
	tests := map[string]int{"4": 4, "+2": 2, "-1": -1, "0": 0}
	for input, want := range tests {
		got, err := ParseDelta(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseDelta("lots")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseNameOverrides(t *testing.T) {
	got, err := ParseNameOverrides([]string{"0=Ann", "3=Bo=b", "1="})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{0: "Ann", 3: "Bo=b", 1: ""}, got)

	got, err = ParseNameOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseNameOverrides([]string{"Ann"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseNameOverrides([]string{"x=Ann"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{in: "", want: Range1M},
		{in: "1m", want: Range1M},
		{in: " 6M ", want: Range6M},
		{in: "1Y", want: Range1Y},
		{in: "5y", want: Range5Y},
		{in: "3M", wantErr: true},
		{in: "max", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeNextWraps(t *testing.T) {
	assert.Equal(t, Range6M, Range1M.Next())
	assert.Equal(t, Range1M, Range5Y.Next())
	assert.Equal(t, DefaultRange, Range("bogus").Next())
}

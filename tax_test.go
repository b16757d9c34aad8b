package finplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDividendTax(t *testing.T) {
	tests := []struct {
		gross   int64
		rate    Rate
		tax     string
		net     string
		comment string
	}{
		{1_000_000, DefaultDividendRate, "154,000원", "846,000원", "exact"},
		{12_345, DefaultDividendRate, "1,901원", "10,444원", "rounded down"},
		{2_500, 0.0002, "0원", "2,500원", "half goes to even"},
		{7_500, 0.0002, "2원", "7,498원", "half goes to even"},
		{0, DefaultDividendRate, "0원", "0원", "nothing"},
	}
	for _, tt := range tests {
		got, err := NewDividendTax(M(tt.gross), tt.rate)
		require.NoError(t, err)
		assert.Equal(t, tt.tax, got.Tax.String(), tt.comment)
		assert.Equal(t, tt.net, got.Net.String(), tt.comment)
	}

	_, err := NewDividendTax(M(-1), DefaultDividendRate)
	assert.Error(t, err)
}

func TestNewCapitalGainTax(t *testing.T) {
	got, err := NewCapitalGainTax(M(10_000), M(15_000), 10, DefaultCapitalGainRate)
	require.NoError(t, err)
	assert.Equal(t, "50,000원", got.Profit.String())
	assert.Equal(t, "11,000원", got.Tax.String())
	assert.Equal(t, "39,000원", got.Net.String())

	got, err = NewCapitalGainTax(M(15_000), M(10_000), 3, DefaultCapitalGainRate)
	require.NoError(t, err)
	assert.Equal(t, "-15,000원", got.Profit.String())
	assert.True(t, got.Tax.IsZero())
	assert.Equal(t, "-15,000원", got.Net.String())

	_, err = NewCapitalGainTax(M(1), M(2), 0, DefaultCapitalGainRate)
	assert.Error(t, err)
}

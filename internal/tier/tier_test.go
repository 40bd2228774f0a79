package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Tier
		wantOK bool
	}{
		{"standard", Standard, true},
		{"Premium", Premium, true},
		{"  DIAMOND ", Diamond, true},
		{"gold", Unknown, false},
		{"", Unknown, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.wantOK, ok, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}
}

func TestDepositCeiling(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{Standard, "1000"},
		{Premium, "50000"},
		{Diamond, "80000"},
	}
	for _, tt := range tests {
		ceiling, ok := tt.tier.DepositCeiling()
		require.True(t, ok, "%s", tt.tier)
		assert.Equal(t, tt.want, ceiling.String())
	}

	_, ok := Unknown.DepositCeiling()
	assert.False(t, ok)
}

func TestNewCard(t *testing.T) {
	card, ok := Premium.NewCard("viagens", "5501 2233 4455 6677")
	require.True(t, ok)
	assert.Equal(t, "viagens", card.Label)
	assert.Equal(t, "premium", card.Product)
	assert.Equal(t, "15000", card.MaxLimit.String())
	assert.NotEmpty(t, card.ID)

	_, ok = Unknown.NewCard("x", "y")
	assert.False(t, ok, "Unknown tier has no card line")
}

package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"01/01/2025", false},
		{"31/12/2025", false},
		{"29/02/2024", false}, // leap year
		{"29/02/2023", true},
		{"32/01/2025", true},
		{"00/01/2025", true},
		{"15/13/2025", true},
		{"2025-01-15", true},
		{"", true},
		{"abc", true},
	}
	for _, tt := range tests {
		d, err := Parse(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "Parse(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.in, d.String())
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("15/06/2025"))
	assert.False(t, Valid("32/06/2025"))
}

func TestAfter(t *testing.T) {
	earlier := New(2025, time.March, 10)
	later := New(2025, time.March, 11)

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.After(earlier))
}

func TestInterval(t *testing.T) {
	base := New(2025, time.March, 10)

	assert.Equal(t, 0, Interval(base, base))
	assert.Equal(t, 5, Interval(base.AddDays(5), base))
	assert.Equal(t, -3, Interval(base.AddDays(-3), base))

	// Across a month boundary.
	assert.Equal(t, 2, Interval(New(2025, time.April, 1), New(2025, time.March, 30)))
}

func TestAddDays(t *testing.T) {
	d := New(2025, time.January, 31)
	assert.Equal(t, "01/02/2025", d.AddDays(1).String())
	assert.Equal(t, "30/01/2025", d.AddDays(-1).String())
}

func TestIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, Today().IsZero())
}

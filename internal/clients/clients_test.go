package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New("Ana Souza", "ana@example.com", "123.456.789-09", "(11) 91234-5678")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", c.Name)
}

func TestNew_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    [4]string
		wantErr error
	}{
		{"empty name", [4]string{"", "a@b.co", "123.456.789-09", "(11) 91234-5678"}, ErrInvalidName},
		{"bad email", [4]string{"Ana", "ana-at-example", "123.456.789-09", "(11) 91234-5678"}, ErrInvalidEmail},
		{"unformatted cpf", [4]string{"Ana", "a@b.co", "12345678909", "(11) 91234-5678"}, ErrInvalidCPF},
		{"bad phone", [4]string{"Ana", "a@b.co", "123.456.789-09", "11912345678"}, ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFieldValidators(t *testing.T) {
	assert.True(t, ValidName("João da Silva"))
	assert.False(t, ValidName("X"))

	assert.True(t, ValidEmail("user.name+tag@sub.example.org"))
	assert.False(t, ValidEmail("user@nodot"))

	assert.True(t, ValidCPF("000.111.222-33"))
	assert.False(t, ValidCPF("000.111.222-3"))

	assert.True(t, ValidPhone("(21) 3456-7890"), "landline without the 9 prefix")
	assert.True(t, ValidPhone("(11) 91234-5678"))
	assert.False(t, ValidPhone("(11) 1234-567"))
}

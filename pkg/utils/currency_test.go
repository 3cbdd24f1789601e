package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{
			name:     "Zero formata com duas casas decimais",
			cents:    0,
			expected: "$0.00",
		},
		{
			name:     "Valor redondo em centavos",
			cents:    1000,
			expected: "$10.00",
		},
		{
			name:     "Centavos quebrados preservam a fração",
			cents:    666,
			expected: "$6.66",
		},
		{
			name:     "Milhares ganham separador",
			cents:    123456,
			expected: "$1,234.56",
		},
		{
			name:     "Milhões ganham múltiplos separadores",
			cents:    123456789,
			expected: "$1,234,567.89",
		},
		{
			name:     "Valor negativo mantém o sinal",
			cents:    -15795,
			expected: "$-157.95",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.cents))
		})
	}
}

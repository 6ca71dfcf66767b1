package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "vírgula decimal", input: "10,50", expected: 10.5},
		{name: "ponto decimal", input: "10.50", expected: 10.5},
		{name: "inteiro", input: "20", expected: 20},
		{name: "espaços", input: "  7,25 ", expected: 7.25},
		{name: "negativo continua numérico", input: "-5", expected: -5},
		{name: "texto", input: "abc", wantErr: true},
		{name: "vazio", input: "", wantErr: true},
		{name: "NaN", input: "NaN", wantErr: true},
		{name: "infinito", input: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 10,50", FormatCurrency(10.5))
	assert.Equal(t, "R$ 0,00", FormatCurrency(0))
	assert.Equal(t, "R$ 1.234,56", FormatCurrency(1234.56))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.3, RoundWithTwoDecimalPlace(0.1+0.2))
	assert.Equal(t, 10.46, RoundWithTwoDecimalPlace(10.456))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))

	// valores enormes voltam intactos em vez de estourar em f*100
	assert.Equal(t, 1e307, RoundWithTwoDecimalPlace(1e307))
	assert.Equal(t, -1e300, RoundWithTwoDecimalPlace(-1e300))
	assert.False(t, math.IsInf(RoundWithTwoDecimalPlace(1.7e308), 0))
}

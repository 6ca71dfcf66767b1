package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ErrInvalidAmount = errors.New("valor inválido")

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	// acima disso f*100 perde os centavos ou estoura
	if math.Abs(f) > 1e15 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata o valor em reais, ex: R$ 1.234,50
func FormatCurrency(v float64) string {
	return "R$ " + brPrinter.Sprint(number.Decimal(RoundWithTwoDecimalPlace(v), number.Scale(2)))
}

// ParseAmount interpreta o texto digitado aceitando vírgula ou ponto como separador decimal.
// Apenas a primeira vírgula é trocada.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidAmount
	}

	v, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}

	return v, nil
}

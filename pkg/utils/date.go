package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Clock retorna o instante atual já no fuso horário da aplicação
type Clock func() time.Time

// NewClock cria um Clock fixado no fuso informado
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// FixedClock devolve sempre o mesmo instante, útil para testes
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}

// TodayStr retorna a data no formato YYYY-MM-DD
func TodayStr(now time.Time) string {
	return now.Format(DateLayout)
}

// MonthKey retorna o mês no formato YYYY-MM
func MonthKey(now time.Time) string {
	return now.Format(MonthLayout)
}

// IsMonthKey verifica se a chave segue o formato YYYY-MM
func IsMonthKey(key string) bool {
	if len(key) != len(MonthLayout) {
		return false
	}
	_, err := time.Parse(MonthLayout, key)
	return err == nil
}

// MonthKeyToLabel converte "2026-10" em "outubro de 2026".
// Chaves inválidas são devolvidas sem alteração.
func MonthKeyToLabel(key string) string {
	t, err := time.Parse(MonthLayout, key)
	if err != nil || len(key) != len(MonthLayout) {
		return key
	}
	return fmt.Sprintf("%s de %d", monthNames[t.Month()-1], t.Year())
}

// FormatDateTime formata como "18/10/2026 • 14:05"
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006") + " • " + t.Format("15:04")
}

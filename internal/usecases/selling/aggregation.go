// Package selling contém as regras puras de vendas: validação da entrada e agregações.
// Nada aqui guarda estado; tudo é recalculado a partir da coleção completa.
package selling

import (
	"sort"

	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
)

// DailyTotal soma as vendas cuja data é o dia informado, independente do mês em exibição
func DailyTotal(sales []*domain.Sale, today string) float64 {
	var total float64
	for _, s := range sales {
		if s.DateStr == today {
			total += s.Value
		}
	}
	return utils.RoundWithTwoDecimalPlace(total)
}

// MonthlyTotal soma as vendas do mês informado
func MonthlyTotal(sales []*domain.Sale, month string) float64 {
	var total float64
	for _, s := range sales {
		if s.MonthKey == month {
			total += s.Value
		}
	}
	return utils.RoundWithTwoDecimalPlace(total)
}

// FilterByMonth mantém a ordem original (mais recentes primeiro)
func FilterByMonth(sales []*domain.Sale, month string) []*domain.Sale {
	filtered := make([]*domain.Sale, 0, len(sales))
	for _, s := range sales {
		if s.MonthKey == month {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// AvailableMonths devolve os meses distintos com vendas mais o mês atual, em ordem decrescente.
// A ordenação lexicográfica de YYYY-MM coincide com a cronológica.
func AvailableMonths(sales []*domain.Sale, currentMonth string) []string {
	seen := map[string]struct{}{currentMonth: {}}
	months := []string{currentMonth}

	for _, s := range sales {
		if _, ok := seen[s.MonthKey]; ok {
			continue
		}
		seen[s.MonthKey] = struct{}{}
		months = append(months, s.MonthKey)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// MonthlySummaries calcula total e quantidade de cada mês informado
func MonthlySummaries(months []string, sales []*domain.Sale) []domain.MonthlySummary {
	summaries := make([]domain.MonthlySummary, 0, len(months))
	for _, month := range months {
		summary := domain.MonthlySummary{MonthKey: month}
		for _, s := range sales {
			if s.MonthKey == month {
				summary.Total += s.Value
				summary.Count++
			}
		}
		summary.Total = utils.RoundWithTwoDecimalPlace(summary.Total)
		summaries = append(summaries, summary)
	}
	return summaries
}

// CountByDate conta as vendas de um dia
func CountByDate(sales []*domain.Sale, date string) int {
	count := 0
	for _, s := range sales {
		if s.DateStr == date {
			count++
		}
	}
	return count
}

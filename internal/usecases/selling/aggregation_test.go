package selling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/financas-pro-api/internal/domain"
)

func sale(id, date string, value float64) *domain.Sale {
	return &domain.Sale{
		ID:          id,
		ProductName: "Produto " + id,
		Value:       value,
		DateStr:     date,
		MonthKey:    date[:7],
	}
}

func TestDailyTotal(t *testing.T) {
	sales := []*domain.Sale{
		sale("1", "2026-10-18", 10.5),
		sale("2", "2026-10-18", 20),
		sale("3", "2026-10-17", 100),
		sale("4", "2025-10-18", 7),
	}

	assert.Equal(t, 30.5, DailyTotal(sales, "2026-10-18"))
	assert.Equal(t, 0.0, DailyTotal(sales, "2026-10-19"))
	assert.Equal(t, 0.0, DailyTotal(nil, "2026-10-18"))
}

func TestMonthlyTotalAndFilter(t *testing.T) {
	sales := []*domain.Sale{
		sale("3", "2026-10-18", 0.1),
		sale("2", "2026-09-30", 50),
		sale("1", "2026-10-01", 0.2),
	}

	assert.Equal(t, 0.3, MonthlyTotal(sales, "2026-10"))
	assert.Equal(t, 50.0, MonthlyTotal(sales, "2026-09"))

	filtered := FilterByMonth(sales, "2026-10")
	if assert.Len(t, filtered, 2) {
		assert.Equal(t, "3", filtered[0].ID)
		assert.Equal(t, "1", filtered[1].ID)
	}
	assert.Empty(t, FilterByMonth(sales, "2020-01"))
}

func TestMonthlyTotalTracksAddAndDelete(t *testing.T) {
	base := []*domain.Sale{sale("1", "2026-10-02", 12.34)}
	added := sale("2", "2026-10-03", 7.66)

	before := MonthlyTotal(base, "2026-10")
	after := MonthlyTotal(append([]*domain.Sale{added}, base...), "2026-10")

	assert.InDelta(t, added.Value, after-before, 1e-9)
	assert.InDelta(t, before, MonthlyTotal(base, "2026-10"), 1e-9)
}

func TestAvailableMonths(t *testing.T) {
	tests := []struct {
		name     string
		sales    []*domain.Sale
		current  string
		expected []string
	}{
		{
			name:     "sem vendas contém o mês atual",
			current:  "2026-10",
			expected: []string{"2026-10"},
		},
		{
			name: "meses distintos em ordem decrescente",
			sales: []*domain.Sale{
				sale("1", "2025-12-01", 1),
				sale("2", "2026-02-01", 1),
				sale("3", "2025-12-15", 1),
			},
			current:  "2026-10",
			expected: []string{"2026-10", "2026-02", "2025-12"},
		},
		{
			name:     "mês atual já presente não duplica",
			sales:    []*domain.Sale{sale("1", "2026-10-01", 1)},
			current:  "2026-10",
			expected: []string{"2026-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AvailableMonths(tt.sales, tt.current))
		})
	}
}

func TestMonthlySummaries(t *testing.T) {
	sales := []*domain.Sale{
		sale("1", "2026-10-01", 10),
		sale("2", "2026-10-02", 5.5),
		sale("3", "2026-09-01", 3),
	}

	summaries := MonthlySummaries([]string{"2026-11", "2026-10", "2026-09"}, sales)

	assert.Equal(t, []domain.MonthlySummary{
		{MonthKey: "2026-11", Total: 0, Count: 0},
		{MonthKey: "2026-10", Total: 15.5, Count: 2},
		{MonthKey: "2026-09", Total: 3, Count: 1},
	}, summaries)
}

func TestCountByDate(t *testing.T) {
	sales := []*domain.Sale{sale("1", "2026-10-01", 10), sale("2", "2026-10-01", 1), sale("3", "2026-10-02", 1)}
	assert.Equal(t, 2, CountByDate(sales, "2026-10-01"))
}

package session

import (
	"context"
	"time"

	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/internal/usecases/selling"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
)

const (
	titleToday          = "Vendas de Hoje"
	emptyTodayMessage   = "Nenhuma venda registrada hoje."
	emptyMonthMessage   = "Nenhuma venda encontrada para este mês."
	emptyHistoryMessage = "Nenhum histórico disponível."
)

// snapshot é uma leitura consistente do estado, tirada sob o lock
type snapshot struct {
	account      string
	sales        []*domain.Sale
	viewMonth    string
	showHistory  bool
	now          time.Time
	today        string
	currentMonth string
}

func (s *Session) snapshot() (snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == "" {
		return snapshot{}, ErrNotAuthenticated
	}

	now := s.now()
	return snapshot{
		account:      s.account,
		sales:        s.sales,
		viewMonth:    s.viewMonth,
		showHistory:  s.showHistory,
		now:          now,
		today:        utils.TodayStr(now),
		currentMonth: utils.MonthKey(now),
	}, nil
}

func (v snapshot) isCurrentMonth() bool {
	return v.viewMonth == v.currentMonth
}

func (v snapshot) summary() *domain.Summary {
	daily := selling.DailyTotal(v.sales, v.today)
	monthly := selling.MonthlyTotal(v.sales, v.viewMonth)

	return &domain.Summary{
		DailyTotal:            daily,
		FormattedDailyTotal:   utils.FormatCurrency(daily),
		MonthlyTotal:          monthly,
		FormattedMonthlyTotal: utils.FormatCurrency(monthly),
		ViewMonth:             v.viewMonth,
		ViewMonthLabel:        utils.MonthKeyToLabel(v.viewMonth),
		IsCurrentMonth:        v.isCurrentMonth(),
	}
}

func (v snapshot) saleList() *domain.SaleList {
	filtered := selling.FilterByMonth(v.sales, v.viewMonth)

	list := &domain.SaleList{
		Month: v.viewMonth,
		Items: make([]domain.SaleItem, 0, len(filtered)),
	}

	for _, sale := range filtered {
		list.Items = append(list.Items, domain.SaleItem{
			ID:             sale.ID,
			ProductName:    sale.ProductName,
			CustomerName:   sale.CustomerName,
			Value:          sale.Value,
			FormattedValue: utils.FormatCurrency(sale.Value),
			DisplayTime:    utils.FormatDateTime(time.UnixMilli(sale.Timestamp).In(v.now.Location())),
			IsToday:        sale.DateStr == v.today,
		})
	}

	if len(list.Items) == 0 {
		list.EmptyMessage = emptyMonthMessage
		if v.isCurrentMonth() {
			list.EmptyMessage = emptyTodayMessage
		}
	}

	return list
}

func (v snapshot) history() *domain.History {
	months := selling.AvailableMonths(v.sales, v.currentMonth)
	summaries := selling.MonthlySummaries(months, v.sales)

	history := &domain.History{
		Months:      make([]domain.HistoryEntry, 0, len(summaries)),
		ActiveMonth: v.viewMonth,
	}

	for _, summary := range summaries {
		history.Months = append(history.Months, domain.HistoryEntry{
			MonthKey:       summary.MonthKey,
			Label:          utils.MonthKeyToLabel(summary.MonthKey),
			Total:          summary.Total,
			FormattedTotal: utils.FormatCurrency(summary.Total),
			Count:          summary.Count,
			Active:         summary.MonthKey == v.viewMonth,
		})
	}

	if len(history.Months) == 0 {
		history.Placeholder = emptyHistoryMessage
	}

	return history
}

// Summary devolve os totais do dia e do período em exibição
func (s *Session) Summary() (*domain.Summary, error) {
	v, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return v.summary(), nil
}

// Sales devolve a listagem do período em exibição, mais recentes primeiro
func (s *Session) Sales() (*domain.SaleList, error) {
	v, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return v.saleList(), nil
}

// History devolve todos os meses com movimento e seus agregados
func (s *Session) History() (*domain.History, error) {
	v, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return v.history(), nil
}

// Dashboard monta a tela principal: histórico quando o modo está ativo, senão resumo e listagem
func (s *Session) Dashboard() (*domain.Dashboard, error) {
	v, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		Account:     v.account,
		ShowHistory: v.showHistory,
	}

	if v.showHistory {
		dashboard.History = v.history()
		return dashboard, nil
	}

	dashboard.Title = titleToday
	if !v.isCurrentMonth() {
		dashboard.Title = "Vendas de " + utils.MonthKeyToLabel(v.viewMonth)
	}
	dashboard.ShowBackToToday = !v.isCurrentMonth()
	dashboard.ShowForm = v.isCurrentMonth()
	dashboard.Summary = v.summary()
	dashboard.Sales = v.saleList()

	return dashboard, nil
}

// DailyClosing calcula o fechamento do dia da conta ativa
func (s *Session) DailyClosing(_ context.Context) (*domain.DailyClosing, error) {
	v, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return &domain.DailyClosing{
		Account:      v.account,
		Date:         v.today,
		DailyTotal:   selling.DailyTotal(v.sales, v.today),
		DailyCount:   selling.CountByDate(v.sales, v.today),
		MonthKey:     v.currentMonth,
		MonthlyTotal: selling.MonthlyTotal(v.sales, v.currentMonth),
	}, nil
}

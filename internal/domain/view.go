package domain

// SaleItem é uma linha da listagem de vendas
type SaleItem struct {
	ID             string  `json:"id"`
	ProductName    string  `json:"productName"`
	CustomerName   *string `json:"customerName,omitempty"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formattedValue"`
	DisplayTime    string  `json:"displayTime"`
	IsToday        bool    `json:"isToday"`
}

// SaleList é a listagem de um período, com a mensagem de estado vazio quando não há itens
type SaleList struct {
	Month        string     `json:"month"`
	Items        []SaleItem `json:"items"`
	EmptyMessage string     `json:"emptyMessage,omitempty"`
}

// Summary corresponde aos cartões de total diário e mensal
type Summary struct {
	DailyTotal            float64 `json:"dailyTotal"`
	FormattedDailyTotal   string  `json:"formattedDailyTotal"`
	MonthlyTotal          float64 `json:"monthlyTotal"`
	FormattedMonthlyTotal string  `json:"formattedMonthlyTotal"`
	ViewMonth             string  `json:"viewMonth"`
	ViewMonthLabel        string  `json:"viewMonthLabel"`
	IsCurrentMonth        bool    `json:"isCurrentMonth"`
}

// HistoryEntry é um mês no navegador de histórico
type HistoryEntry struct {
	MonthKey       string  `json:"monthKey"`
	Label          string  `json:"label"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formattedTotal"`
	Count          int     `json:"count"`
	Active         bool    `json:"active"`
}

// History lista todos os meses com movimento
type History struct {
	Months      []HistoryEntry `json:"months"`
	ActiveMonth string         `json:"activeMonth"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// Dashboard reúne tudo o que a tela principal exibe
type Dashboard struct {
	Account         string    `json:"account"`
	Title           string    `json:"title"`
	ShowHistory     bool      `json:"showHistory"`
	ShowBackToToday bool      `json:"showBackToToday"`
	ShowForm        bool      `json:"showForm"`
	Summary         *Summary  `json:"summary,omitempty"`
	Sales           *SaleList `json:"sales,omitempty"`
	History         *History  `json:"history,omitempty"`
}

// DailyClosing é o fechamento do dia gerado pelo agendador
type DailyClosing struct {
	Account      string  `json:"account"`
	Date         string  `json:"date"`
	DailyTotal   float64 `json:"dailyTotal"`
	DailyCount   int     `json:"dailyCount"`
	MonthKey     string  `json:"monthKey"`
	MonthlyTotal float64 `json:"monthlyTotal"`
}

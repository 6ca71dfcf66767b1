package domain

// MaxSaleValue limita uma única venda; a soma de muitas vendas continua finita
const MaxSaleValue = 1e12

// Sale representa uma venda registrada. DateStr e MonthKey são derivados uma única vez,
// no momento do registro, e nunca recalculados a partir de Timestamp.
type Sale struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"productName"`
	CustomerName *string `json:"customerName,omitempty"`
	Value        float64 `json:"value"`
	Timestamp    int64   `json:"timestamp"` // milissegundos desde epoch
	DateStr      string  `json:"dateStr"`   // YYYY-MM-DD
	MonthKey     string  `json:"monthKey"`  // YYYY-MM
}

// SaleInput são os dados digitados no formulário de nova venda
type SaleInput struct {
	ProductName  string `json:"productName"`
	CustomerName string `json:"customerName"`
	Value        string `json:"value"`
}

// MonthlySummary é o agregado derivado de um mês, nunca armazenado
type MonthlySummary struct {
	MonthKey string  `json:"monthKey"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

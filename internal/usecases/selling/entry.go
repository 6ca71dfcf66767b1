package selling

import (
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
)

var (
	ErrInvalidSale      = errors.New("venda inválida")
	ErrMissingProduct   = errors.New("informe o produto")
	ErrMissingValue     = errors.New("informe o valor")
	ErrUnparsableValue  = errors.New("valor não numérico")
	ErrNonPositiveValue = errors.New("o valor deve ser maior que zero")
	ErrValueTooLarge    = errors.New("valor acima do limite permitido")
)

// ValidationError indica o motivo da rejeição de uma entrada. Sempre casa com ErrInvalidSale.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return ErrInvalidSale.Error() + ": " + e.Reason.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSale
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// ParseSaleInput valida os campos digitados e devolve o valor numérico
func ParseSaleInput(input domain.SaleInput) (float64, error) {
	if strings.TrimSpace(input.ProductName) == "" {
		return 0, &ValidationError{Reason: ErrMissingProduct}
	}

	if strings.TrimSpace(input.Value) == "" {
		return 0, &ValidationError{Reason: ErrMissingValue}
	}

	value, err := utils.ParseAmount(input.Value)
	if err != nil {
		return 0, &ValidationError{Reason: ErrUnparsableValue}
	}

	if value <= 0 {
		return 0, &ValidationError{Reason: ErrNonPositiveValue}
	}

	if value > domain.MaxSaleValue {
		return 0, &ValidationError{Reason: ErrValueTooLarge}
	}

	return value, nil
}

// NewSale monta a venda a partir de uma entrada válida, derivando as chaves de calendário do instante informado
func NewSale(input domain.SaleInput, now time.Time) (*domain.Sale, error) {
	value, err := ParseSaleInput(input)
	if err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ID:          utils.NewSaleID(),
		ProductName: input.ProductName,
		Value:       value,
		Timestamp:   now.UnixMilli(),
		DateStr:     utils.TodayStr(now),
		MonthKey:    utils.MonthKey(now),
	}

	if customer := strings.TrimSpace(input.CustomerName); customer != "" {
		sale.CustomerName = &customer
	}

	return sale, nil
}

package session

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated     = errors.New("nenhuma conta ativa")
	ErrMissingAccount       = errors.New("identificador da conta é obrigatório")
	ErrSaleNotFound         = errors.New("venda não encontrada")
	ErrInvalidMonth         = errors.New("mês inválido, use o formato YYYY-MM")
	ErrConfirmationRequired = errors.New("confirmação necessária")
)

const logoutPrompt = "Deseja realmente sair? Seus dados permanecem salvos vinculados ao seu e-mail."

// ConfirmationError é devolvido por ações destrutivas chamadas sem confirmação.
// Prompt é a pergunta que o cliente deve exibir antes de repetir a chamada.
type ConfirmationError struct {
	Prompt string
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfirmationRequired.Error(), e.Prompt)
}

func (e *ConfirmationError) Is(target error) bool {
	return target == ErrConfirmationRequired
}

func deletePrompt(productName string) string {
	return fmt.Sprintf("Excluir venda de %q?", productName)
}

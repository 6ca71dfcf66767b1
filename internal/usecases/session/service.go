// Package session implementa o portão de sessão: a conta ativa, a coleção de vendas
// carregada em memória e o período em exibição.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/financas-pro-api/infrastructure/repository"
	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/internal/usecases/selling"
	"github.com/vfg2006/financas-pro-api/pkg/log"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
)

// Session é o estado da aplicação. É criado na inicialização e só muda por
// Login, Logout e pelas operações sobre vendas e período.
type Session struct {
	mu   sync.Mutex
	repo repository.SalesRepository
	now  utils.Clock

	account     string
	sales       []*domain.Sale
	viewMonth   string
	showHistory bool

	// ready só fica verdadeiro depois que a coleção da conta foi carregada;
	// antes disso nenhuma gravação acontece para não sobrescrever dados reais
	ready bool
}

func New(repo repository.SalesRepository, clock utils.Clock) *Session {
	return &Session{
		repo:      repo,
		now:       clock,
		sales:     []*domain.Sale{},
		viewMonth: utils.MonthKey(clock()),
	}
}

// Restore reabre a conta que estava ativa quando o processo foi encerrado
func (s *Session) Restore(ctx context.Context) {
	account, ok := s.repo.LoadAccount(ctx)
	if !ok {
		log.ForContext(ctx).Info("session: nenhuma conta ativa salva")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(ctx, account)
	log.ForContext(ctx).WithFields(log.Fields{
		"account":     account,
		"sales_count": len(s.sales),
	}).Info("session: conta restaurada")
}

// Login ativa a conta e troca toda a coleção em memória pela coleção salva dela
func (s *Session) Login(ctx context.Context, account string) error {
	if account == "" {
		return ErrMissingAccount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return errors.Wrap(err, "erro ao ativar a conta")
	}

	previous := s.account
	s.load(ctx, account)

	log.ForContext(ctx).WithFields(log.Fields{
		"account":          account,
		"previous_account": previous,
		"sales_count":      len(s.sales),
	}).Info("session: login realizado")

	return nil
}

func (s *Session) load(ctx context.Context, account string) {
	s.ready = false
	s.account = account
	s.sales = s.repo.LoadRecords(ctx, account)
	s.viewMonth = utils.MonthKey(s.now())
	s.showHistory = false
	s.ready = true
}

// Logout exige confirmação. As vendas da conta continuam salvas para o próximo login.
func (s *Session) Logout(ctx context.Context, confirm bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == "" {
		return ErrNotAuthenticated
	}

	if !confirm {
		return &ConfirmationError{Prompt: logoutPrompt}
	}

	if err := s.repo.ClearAccount(ctx); err != nil {
		return errors.Wrap(err, "erro ao encerrar a sessão")
	}

	log.ForContext(ctx).WithField("account", s.account).Info("session: logout realizado")

	s.account = ""
	s.sales = []*domain.Sale{}
	s.showHistory = false
	s.ready = false
	s.viewMonth = utils.MonthKey(s.now())

	return nil
}

// Current devolve a conta ativa
func (s *Session) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.account, s.account != ""
}

func (s *Session) State() domain.SessionState {
	account, ok := s.Current()
	return domain.SessionState{Authenticated: ok, Account: account}
}

// AddSale valida a entrada e coloca a nova venda no topo da coleção.
// Entrada inválida não altera nada.
func (s *Session) AddSale(ctx context.Context, input domain.SaleInput) (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == "" {
		return nil, ErrNotAuthenticated
	}

	now := s.now()
	sale, err := selling.NewSale(input, now)
	if err != nil {
		return nil, err
	}

	updated := make([]*domain.Sale, 0, len(s.sales)+1)
	updated = append(updated, sale)
	updated = append(updated, s.sales...)

	s.sales = updated
	s.viewMonth = utils.MonthKey(now)
	s.persist(ctx)

	log.ForContext(ctx).WithFields(log.Fields{
		"account":    s.account,
		"sale_id":    sale.ID,
		"sale_value": sale.Value,
	}).Info("session: venda registrada")

	return sale, nil
}

// DeleteSale remove exatamente a venda com o identificador informado, após confirmação
func (s *Session) DeleteSale(ctx context.Context, id string, confirm bool) (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == "" {
		return nil, ErrNotAuthenticated
	}

	var target *domain.Sale
	for _, sale := range s.sales {
		if sale.ID == id {
			target = sale
			break
		}
	}
	if target == nil {
		return nil, ErrSaleNotFound
	}

	if !confirm {
		return nil, &ConfirmationError{Prompt: deletePrompt(target.ProductName)}
	}

	updated := make([]*domain.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		if sale.ID != id {
			updated = append(updated, sale)
		}
	}

	s.sales = updated
	s.persist(ctx)

	log.ForContext(ctx).WithFields(log.Fields{
		"account": s.account,
		"sale_id": id,
	}).Info("session: venda excluída")

	return target, nil
}

// persist grava a coleção depois que a mudança em memória já foi aplicada.
// Uma falha de gravação fica no log; a mudança em memória é mantida.
func (s *Session) persist(ctx context.Context) {
	if !s.ready || s.account == "" {
		return
	}

	if err := s.repo.SaveRecords(ctx, s.account, s.sales); err != nil {
		log.ForContext(ctx).WithError(err).WithField("account", s.account).
			Error("session: erro ao salvar vendas")
	}
}

// SelectMonth troca o período em exibição e sai do modo histórico
func (s *Session) SelectMonth(month string) error {
	if !utils.IsMonthKey(month) {
		return ErrInvalidMonth
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == "" {
		return ErrNotAuthenticated
	}

	s.viewMonth = month
	s.showHistory = false
	return nil
}

// BackToToday volta o período para o mês atual
func (s *Session) BackToToday() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == "" {
		return ErrNotAuthenticated
	}

	s.viewMonth = utils.MonthKey(s.now())
	return nil
}

// ToggleHistory alterna o modo histórico e devolve o novo estado
func (s *Session) ToggleHistory() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == "" {
		return false, ErrNotAuthenticated
	}

	s.showHistory = !s.showHistory
	return s.showHistory, nil
}

// Records devolve uma cópia da coleção em memória
func (s *Session) Records() []*domain.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// ViewMonth devolve o período em exibição
func (s *Session) ViewMonth() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewMonth
}

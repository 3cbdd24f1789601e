package dashboarding

import (
	"context"
	"sync"

	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/utils"
)

// latestInvoicesLimit é o tamanho fixo da lista de faturas recentes do painel.
const latestInvoicesLimit = 5

type Dashboarder interface {
	FetchRevenue() ([]*domain.Revenue, error)
	FetchLatestInvoices() ([]*domain.LatestInvoice, error)
	FetchCardData() (*domain.CardSummary, error)
}

type Service struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	revenueRepo  repository.RevenueRepository
	demo         *config.Demo
}

func NewService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	revenueRepo repository.RevenueRepository,
) Dashboarder {
	return &Service{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
	}
}

// WithSimulatedLatency ativa o atraso artificial em FetchRevenue, usado para
// demonstrar os estados de carregamento da UI. Desligado, nada muda.
func (s *Service) WithSimulatedLatency(demo config.Demo) Dashboarder {
	s.demo = &demo
	return s
}

// FetchRevenue retorna o faturamento mensal sem nenhuma transformação.
func (s *Service) FetchRevenue() ([]*domain.Revenue, error) {
	if s.demo != nil {
		_ = utils.RandomDelay(context.Background(),
			s.demo.SimulateLatencyMinMs, s.demo.SimulateLatencyMaxMs)
	}

	return s.revenueRepo.ListRevenue()
}

// FetchLatestInvoices retorna as 5 faturas mais recentes com o valor já
// formatado como moeda.
func (s *Service) FetchLatestInvoices() ([]*domain.LatestInvoice, error) {
	rawInvoices, err := s.invoiceRepo.ListLatest(latestInvoicesLimit)
	if err != nil {
		return nil, err
	}

	latest := make([]*domain.LatestInvoice, 0, len(rawInvoices))
	for _, invoice := range rawInvoices {
		latest = append(latest, &domain.LatestInvoice{
			ID:       invoice.ID,
			Name:     invoice.Name,
			ImageURL: invoice.ImageURL,
			Email:    invoice.Email,
			Amount:   utils.FormatCurrency(invoice.Amount),
		})
	}

	return latest, nil
}

// FetchCardData dispara as três agregações em paralelo (fan-out) e só retorna
// depois que todas terminam (fan-in). As consultas são independentes entre
// si, então a latência fica limitada pela mais lenta e não pela soma. A
// primeira falha derruba a operação inteira; as consultas ainda em voo não
// são canceladas e terminam sozinhas.
func (s *Service) FetchCardData() (*domain.CardSummary, error) {
	var (
		wg            sync.WaitGroup
		invoiceCount  int64
		customerCount int64
		statusTotals  *domain.InvoiceStatusTotals
	)

	errs := make(chan error, 3)

	wg.Add(3)

	go func() {
		defer wg.Done()
		count, err := s.invoiceRepo.CountInvoices()
		if err != nil {
			errs <- err
			return
		}
		invoiceCount = count
	}()

	go func() {
		defer wg.Done()
		count, err := s.customerRepo.CountCustomers()
		if err != nil {
			errs <- err
			return
		}
		customerCount = count
	}()

	go func() {
		defer wg.Done()
		totals, err := s.invoiceRepo.SumAmountByStatus()
		if err != nil {
			errs <- err
			return
		}
		statusTotals = totals
	}()

	wg.Wait()
	close(errs)

	// Canal fechado e vazio devolve nil; senão, o primeiro erro enfileirado.
	if err := <-errs; err != nil {
		return nil, err
	}

	return &domain.CardSummary{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    utils.FormatCurrency(statusTotals.Paid),
		TotalPendingInvoices: utils.FormatCurrency(statusTotals.Pending),
	}, nil
}

package invoicing

import (
	"math"

	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

// ItemsPerPage é o tamanho fixo de página da tabela de faturas; toda a
// matemática de paginação é definida sobre ele.
const ItemsPerPage = 6

type Invoicer interface {
	FetchFilteredInvoices(query string, page int) ([]*domain.InvoicesTableRow, error)
	FetchInvoicesPages(query string) (int, error)
	FetchInvoiceByID(invoiceID string) (*domain.InvoiceForm, error)
}

type Service struct {
	invoiceRepo repository.InvoiceRepository
}

func NewService(invoiceRepo repository.InvoiceRepository) Invoicer {
	return &Service{
		invoiceRepo: invoiceRepo,
	}
}

// FetchFilteredInvoices retorna no máximo uma página (6 linhas) da busca,
// com offset (page-1)*6. Páginas começam em 1.
func (s *Service) FetchFilteredInvoices(query string, page int) ([]*domain.InvoicesTableRow, error) {
	if page < 1 {
		page = 1
	}

	offset := uint64(page-1) * ItemsPerPage

	return s.invoiceRepo.ListFiltered(query, offset, ItemsPerPage)
}

// FetchInvoicesPages calcula ceil(N/6) para o mesmo WHERE da busca filtrada.
func (s *Service) FetchInvoicesPages(query string) (int, error) {
	count, err := s.invoiceRepo.CountFiltered(query)
	if err != nil {
		return 0, err
	}

	return int(math.Ceil(float64(count) / float64(ItemsPerPage))), nil
}

// FetchInvoiceByID busca a fatura para o formulário de edição e divide o
// valor por 100 (centavos -> unidades). As listagens NÃO fazem essa divisão;
// o formulário é a única borda que trabalha em unidades.
// Retorna nil sem erro quando a fatura não existe.
func (s *Service) FetchInvoiceByID(invoiceID string) (*domain.InvoiceForm, error) {
	invoice, err := s.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}

	if invoice == nil {
		return nil, nil
	}

	return &domain.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
	}, nil
}

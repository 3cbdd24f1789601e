package customering

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/dataErrors"
	"github.com/vfg2006/invoice-dashboard-api/pkg/utils"
)

type Customerer interface {
	FetchCustomers() ([]*domain.CustomerField, error)
	FetchFilteredCustomers(query string) ([]*domain.FormattedCustomersTableRow, error)
}

type Service struct {
	customerRepo repository.CustomerRepository
}

func NewService(customerRepo repository.CustomerRepository) Customerer {
	return &Service{
		customerRepo: customerRepo,
	}
}

// FetchCustomers retorna id e nome de todos os clientes, por nome ascendente.
// Erros sobem sem embrulho.
func (s *Service) FetchCustomers() ([]*domain.CustomerField, error) {
	return s.customerRepo.ListNames()
}

// FetchFilteredCustomers busca clientes por nome ou email e formata os
// totais pendente/pago como moeda. Qualquer falha é logada com a causa
// completa e devolvida ao chamador apenas como ErrCustomerTableFetch.
func (s *Service) FetchFilteredCustomers(query string) ([]*domain.FormattedCustomersTableRow, error) {
	rows, err := s.customerRepo.ListFilteredWithTotals(query)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "fetchFilteredCustomers")).
			Error("Erro ao consultar a tabela de clientes")
		return nil, dataErrors.NewQueryError(ErrCustomerTableFetch, dataErrors.ErrCustomerTable, "")
	}

	customers := make([]*domain.FormattedCustomersTableRow, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, &domain.FormattedCustomersTableRow{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  utils.FormatCurrency(row.TotalPending),
			TotalPaid:     utils.FormatCurrency(row.TotalPaid),
		})
	}

	return customers, nil
}

package dashboarding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_FetchRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
	mockRevenueRepo := mocks.NewMockRevenueRepository(ctrl)

	service := NewService(mockInvoiceRepo, mockCustomerRepo, mockRevenueRepo)

	t.Run("Retorna o faturamento mensal sem transformação", func(t *testing.T) {
		expected := []*domain.Revenue{
			{Month: "Jan", Revenue: 2000},
			{Month: "Feb", Revenue: 1800},
		}

		mockRevenueRepo.EXPECT().
			ListRevenue().
			Return(expected, nil)

		result, err := service.FetchRevenue()

		assert.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("Propaga o erro do repositório sem embrulho", func(t *testing.T) {
		repoErr := errors.New("connection refused")

		mockRevenueRepo.EXPECT().
			ListRevenue().
			Return(nil, repoErr)

		result, err := service.FetchRevenue()

		assert.Nil(t, result)
		assert.Equal(t, repoErr, err)
	})

	t.Run("Latência simulada desligada não atrasa a consulta", func(t *testing.T) {
		delayed := NewService(mockInvoiceRepo, mockCustomerRepo, mockRevenueRepo).(*Service).
			WithSimulatedLatency(config.Demo{})

		mockRevenueRepo.EXPECT().
			ListRevenue().
			Return([]*domain.Revenue{{Month: "Jan", Revenue: 2000}}, nil)

		start := time.Now()
		result, err := delayed.FetchRevenue()

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})
}

func TestService_FetchLatestInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
	mockRevenueRepo := mocks.NewMockRevenueRepository(ctrl)

	service := NewService(mockInvoiceRepo, mockCustomerRepo, mockRevenueRepo)

	t.Run("Formata o valor de cada fatura como moeda", func(t *testing.T) {
		mockInvoiceRepo.EXPECT().
			ListLatest(uint64(5)).
			Return([]*domain.LatestInvoiceRaw{
				{
					ID:       "inv001",
					Name:     "Delba de Oliveira",
					ImageURL: "/customers/delba-de-oliveira.png",
					Email:    "delba@oliveira.com",
					Amount:   15795,
				},
				{
					ID:       "inv002",
					Name:     "Lee Robinson",
					ImageURL: "/customers/lee-robinson.png",
					Email:    "lee@robinson.com",
					Amount:   123456,
				},
			}, nil)

		result, err := service.FetchLatestInvoices()

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "$157.95", result[0].Amount)
		assert.Equal(t, "Delba de Oliveira", result[0].Name)
		assert.Equal(t, "$1,234.56", result[1].Amount)
	})

	t.Run("Lista vazia retorna slice vazio, não nil com erro", func(t *testing.T) {
		mockInvoiceRepo.EXPECT().
			ListLatest(uint64(5)).
			Return([]*domain.LatestInvoiceRaw{}, nil)

		result, err := service.FetchLatestInvoices()

		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Propaga o erro do repositório", func(t *testing.T) {
		repoErr := errors.New("query timeout")

		mockInvoiceRepo.EXPECT().
			ListLatest(uint64(5)).
			Return(nil, repoErr)

		result, err := service.FetchLatestInvoices()

		assert.Nil(t, result)
		assert.Equal(t, repoErr, err)
	})
}

func TestService_FetchCardData(t *testing.T) {
	t.Run("Agrega as três consultas e formata os totais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
		mockRevenueRepo := mocks.NewMockRevenueRepository(ctrl)

		service := NewService(mockInvoiceRepo, mockCustomerRepo, mockRevenueRepo)

		mockInvoiceRepo.EXPECT().
			CountInvoices().
			Return(int64(5), nil)

		mockCustomerRepo.EXPECT().
			CountCustomers().
			Return(int64(3), nil)

		mockInvoiceRepo.EXPECT().
			SumAmountByStatus().
			Return(&domain.InvoiceStatusTotals{Paid: 4500, Pending: 3500}, nil)

		result, err := service.FetchCardData()

		assert.NoError(t, err)
		assert.Equal(t, int64(5), result.NumberOfInvoices)
		assert.Equal(t, int64(3), result.NumberOfCustomers)
		assert.Equal(t, "$45.00", result.TotalPaidInvoices)
		assert.Equal(t, "$35.00", result.TotalPendingInvoices)
	})

	t.Run("Tabelas vazias produzem zeros formatados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
		mockRevenueRepo := mocks.NewMockRevenueRepository(ctrl)

		service := NewService(mockInvoiceRepo, mockCustomerRepo, mockRevenueRepo)

		mockInvoiceRepo.EXPECT().
			CountInvoices().
			Return(int64(0), nil)

		mockCustomerRepo.EXPECT().
			CountCustomers().
			Return(int64(0), nil)

		mockInvoiceRepo.EXPECT().
			SumAmountByStatus().
			Return(&domain.InvoiceStatusTotals{}, nil)

		result, err := service.FetchCardData()

		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.NumberOfInvoices)
		assert.Equal(t, "$0.00", result.TotalPaidInvoices)
		assert.Equal(t, "$0.00", result.TotalPendingInvoices)
	})

	t.Run("Falha em uma das consultas derruba a operação inteira", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
		mockRevenueRepo := mocks.NewMockRevenueRepository(ctrl)

		service := NewService(mockInvoiceRepo, mockCustomerRepo, mockRevenueRepo)

		repoErr := errors.New("deadlock detected")

		// As três consultas sempre executam; só a contagem de clientes falha.
		mockInvoiceRepo.EXPECT().
			CountInvoices().
			Return(int64(5), nil)

		mockCustomerRepo.EXPECT().
			CountCustomers().
			Return(int64(0), repoErr)

		mockInvoiceRepo.EXPECT().
			SumAmountByStatus().
			Return(&domain.InvoiceStatusTotals{Paid: 4500, Pending: 3500}, nil)

		result, err := service.FetchCardData()

		assert.Nil(t, result)
		assert.Equal(t, repoErr, err)
	})
}

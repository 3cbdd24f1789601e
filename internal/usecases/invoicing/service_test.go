package invoicing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_FetchFilteredInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	service := NewService(mockInvoiceRepo)

	rows := []*domain.InvoicesTableRow{
		{ID: "inv001", Name: "Delba de Oliveira", Amount: 15795, Status: domain.InvoiceStatusPending},
	}

	tests := []struct {
		name           string
		page           int
		expectedOffset uint64
	}{
		{
			name:           "Página 1 começa no offset 0",
			page:           1,
			expectedOffset: 0,
		},
		{
			name:           "Página 3 começa no offset 12",
			page:           3,
			expectedOffset: 12,
		},
		{
			name:           "Página menor que 1 é tratada como página 1",
			page:           0,
			expectedOffset: 0,
		},
		{
			name:           "Página negativa também é tratada como página 1",
			page:           -2,
			expectedOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockInvoiceRepo.EXPECT().
				ListFiltered("delba", tt.expectedOffset, uint64(ItemsPerPage)).
				Return(rows, nil)

			result, err := service.FetchFilteredInvoices("delba", tt.page)

			assert.NoError(t, err)
			assert.Equal(t, rows, result)
		})
	}

	t.Run("O valor das linhas permanece em centavos, sem divisão", func(t *testing.T) {
		mockInvoiceRepo.EXPECT().
			ListFiltered("", uint64(0), uint64(ItemsPerPage)).
			Return(rows, nil)

		result, err := service.FetchFilteredInvoices("", 1)

		assert.NoError(t, err)
		assert.Equal(t, int64(15795), result[0].Amount)
	})

	t.Run("Propaga o erro do repositório", func(t *testing.T) {
		repoErr := errors.New("query timeout")

		mockInvoiceRepo.EXPECT().
			ListFiltered("delba", uint64(0), uint64(ItemsPerPage)).
			Return(nil, repoErr)

		result, err := service.FetchFilteredInvoices("delba", 1)

		assert.Nil(t, result)
		assert.Equal(t, repoErr, err)
	})
}

func TestService_FetchInvoicesPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	service := NewService(mockInvoiceRepo)

	tests := []struct {
		name     string
		count    int64
		expected int
	}{
		{
			name:     "13 faturas em páginas de 6 dão 3 páginas",
			count:    13,
			expected: 3,
		},
		{
			name:     "Múltiplo exato do tamanho da página não cria página extra",
			count:    12,
			expected: 2,
		},
		{
			name:     "Nenhuma fatura resulta em zero páginas",
			count:    0,
			expected: 0,
		},
		{
			name:     "Uma única fatura ocupa uma página",
			count:    1,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockInvoiceRepo.EXPECT().
				CountFiltered("delba").
				Return(tt.count, nil)

			pages, err := service.FetchInvoicesPages("delba")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, pages)
		})
	}

	t.Run("Propaga o erro do repositório", func(t *testing.T) {
		repoErr := errors.New("connection refused")

		mockInvoiceRepo.EXPECT().
			CountFiltered("delba").
			Return(int64(0), repoErr)

		pages, err := service.FetchInvoicesPages("delba")

		assert.Zero(t, pages)
		assert.Equal(t, repoErr, err)
	})
}

func TestService_FetchInvoiceByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	service := NewService(mockInvoiceRepo)

	t.Run("Divide o valor por 100 para o formulário de edição", func(t *testing.T) {
		mockInvoiceRepo.EXPECT().
			GetByID("inv001").
			Return(&domain.Invoice{
				ID:         "inv001",
				CustomerID: "cus001",
				Amount:     5000,
				Status:     domain.InvoiceStatusPaid,
			}, nil)

		result, err := service.FetchInvoiceByID("inv001")

		assert.NoError(t, err)
		assert.Equal(t, "inv001", result.ID)
		assert.Equal(t, "cus001", result.CustomerID)
		assert.Equal(t, 50.0, result.Amount)
		assert.Equal(t, domain.InvoiceStatusPaid, result.Status)
	})

	t.Run("Centavos quebrados viram fração decimal", func(t *testing.T) {
		mockInvoiceRepo.EXPECT().
			GetByID("inv002").
			Return(&domain.Invoice{ID: "inv002", Amount: 666, Status: domain.InvoiceStatusPending}, nil)

		result, err := service.FetchInvoiceByID("inv002")

		assert.NoError(t, err)
		assert.Equal(t, 6.66, result.Amount)
	})

	t.Run("Fatura inexistente retorna nil sem erro", func(t *testing.T) {
		mockInvoiceRepo.EXPECT().
			GetByID("inv999").
			Return(nil, nil)

		result, err := service.FetchInvoiceByID("inv999")

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Propaga o erro do repositório", func(t *testing.T) {
		repoErr := errors.New("query timeout")

		mockInvoiceRepo.EXPECT().
			GetByID("inv001").
			Return(nil, repoErr)

		result, err := service.FetchInvoiceByID("inv001")

		assert.Nil(t, result)
		assert.Equal(t, repoErr, err)
	})
}

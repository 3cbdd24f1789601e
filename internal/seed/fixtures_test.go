package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadFixtures(t *testing.T) {
	fixtures, err := LoadFixtures()
	require.NoError(t, err)

	t.Run("Carga completa de usuários, clientes, faturas e faturamento", func(t *testing.T) {
		assert.Len(t, fixtures.Users, 1)
		assert.Len(t, fixtures.Customers, 8)
		assert.Len(t, fixtures.Invoices, 13)
		assert.Len(t, fixtures.Revenue, 12)
	})

	t.Run("Toda fatura referencia um cliente existente pelo email", func(t *testing.T) {
		emails := make(map[string]bool, len(fixtures.Customers))
		for _, customer := range fixtures.Customers {
			emails[customer.Email] = true
		}

		for _, invoice := range fixtures.Invoices {
			assert.Truef(t, emails[invoice.CustomerEmail],
				"fatura referencia cliente desconhecido: %s", invoice.CustomerEmail)
		}
	})

	t.Run("Status das faturas são válidos e valores positivos", func(t *testing.T) {
		for _, invoice := range fixtures.Invoices {
			assert.True(t, domain.InvoiceStatus(invoice.Status).IsValid())
			assert.Positive(t, invoice.Amount)
		}
	})

	t.Run("Meses de faturamento são únicos e abreviados em três letras", func(t *testing.T) {
		seen := make(map[string]bool, len(fixtures.Revenue))
		for _, revenue := range fixtures.Revenue {
			assert.Len(t, revenue.Month, 3)
			assert.Falsef(t, seen[revenue.Month], "mês duplicado: %s", revenue.Month)
			seen[revenue.Month] = true
		}
	})
}

func TestSeedPasswordHashing(t *testing.T) {
	t.Run("Hash com custo 10 valida a senha original", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcryptCost)
		require.NoError(t, err)

		cost, err := bcrypt.Cost(hash)
		require.NoError(t, err)
		assert.Equal(t, 10, cost)

		assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("123456")))
		assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("wrong")))
	})
}

package seed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
	"github.com/vfg2006/invoice-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost é o fator de custo fixo do hash de senha dos usuários de carga.
const bcryptCost = 10

// Seeder executa a carga inicial do banco: cria as quatro tabelas (se não
// existirem) e insere as linhas de fixture. Não há transação englobando o
// procedimento: a primeira falha aborta os passos restantes e o estado
// parcial fica como está.
type Seeder struct {
	conn   *postgres.Connection
	logger log.Logger
}

func New(conn *postgres.Connection) *Seeder {
	return &Seeder{
		conn:   conn,
		logger: log.L,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	startTime := time.Now()

	// Cada execução carrega o ID de correlação do contexto nos logs
	s.logger = log.ForContext(ctx)

	fixtures, err := LoadFixtures()
	if err != nil {
		return err
	}

	if err := s.createTables(); err != nil {
		return err
	}

	if err := s.seedUsers(fixtures.Users); err != nil {
		return err
	}

	customerIDs, err := s.seedCustomers(fixtures.Customers)
	if err != nil {
		return err
	}

	if err := s.seedInvoices(fixtures.Invoices, customerIDs); err != nil {
		return err
	}

	if err := s.seedRevenue(fixtures.Revenue); err != nil {
		return err
	}

	s.logger.Infof("Carga inicial concluída em %v", time.Since(startTime))
	return nil
}

// createTables cria as tabelas em ordem segura para a chave estrangeira:
// customers precisa existir antes de qualquer insert em invoices. O IF NOT
// EXISTS torna a criação idempotente; as inserções não são.
func (s *Seeder) createTables() error {
	tables := []struct {
		name string
		ddl  string
	}{
		{
			name: "users",
			ddl: `CREATE TABLE IF NOT EXISTS users(
				id VARCHAR(6) NOT NULL,
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255) NOT NULL UNIQUE,
				password VARCHAR(255) NOT NULL,

				PRIMARY KEY(id)
			)`,
		},
		{
			name: "customers",
			ddl: `CREATE TABLE IF NOT EXISTS customers(
				id VARCHAR(6) NOT NULL,
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255) NOT NULL,
				image_url VARCHAR(255) NOT NULL,

				PRIMARY KEY(id)
			)`,
		},
		{
			name: "invoices",
			ddl: `CREATE TABLE IF NOT EXISTS invoices(
				id VARCHAR(6) NOT NULL,
				customer_id VARCHAR(6) NOT NULL,
				amount INT NOT NULL,
				status VARCHAR(255) NOT NULL,
				date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,

				PRIMARY KEY(id),
				CONSTRAINT fk_invoice_to_customer FOREIGN KEY (customer_id) REFERENCES customers(id)
			)`,
		},
		{
			name: "revenue",
			ddl: `CREATE TABLE IF NOT EXISTS revenue(
				month VARCHAR(4) NOT NULL UNIQUE,
				revenue INT NOT NULL
			)`,
		},
	}

	for _, table := range tables {
		if _, err := s.conn.Exec(table.ddl); err != nil {
			return fmt.Errorf("erro ao criar tabela %q: %w", table.name, err)
		}
		s.logger.Infof("Tabela %q criada (ou já existia)", table.name)
	}

	return nil
}

// seedUsers insere os usuários concorrentemente, com a senha passando pelo
// bcrypt antes do insert. A senha em texto puro nunca chega ao banco.
func (s *Seeder) seedUsers(users []UserFixture) error {
	s.logger.Infof("Iniciando inserção de %d usuários...", len(users))

	var wg sync.WaitGroup
	errs := make(chan error, len(users))

	for _, user := range users {
		wg.Add(1)
		go func(user UserFixture) {
			defer wg.Done()

			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
			if err != nil {
				errs <- fmt.Errorf("erro ao gerar hash da senha de %s: %w", user.Email, err)
				return
			}

			id, err := utils.GenerateID()
			if err != nil {
				errs <- fmt.Errorf("erro ao gerar ID para %s: %w", user.Email, err)
				return
			}

			query, args, err := squirrel.
				Insert("users").
				Columns("id", "name", "email", "password").
				Values(id, user.Name, user.Email, string(hashedPassword)).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				errs <- fmt.Errorf("erro ao construir insert de usuário: %w", err)
				return
			}

			if _, err := s.conn.Exec(query, args...); err != nil {
				errs <- fmt.Errorf("erro ao inserir usuário %s: %w", user.Email, err)
			}
		}(user)
	}

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return err
	}

	s.logger.Infof("Tabela \"users\" populada. %d usuários inseridos", len(users))
	return nil
}

// seedCustomers insere os clientes concorrentemente e retorna o mapa
// email -> ID gerado, usado depois para resolver a chave estrangeira das
// faturas.
func (s *Seeder) seedCustomers(customers []CustomerFixture) (map[string]string, error) {
	s.logger.Infof("Iniciando inserção de %d clientes...", len(customers))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	customerIDs := make(map[string]string, len(customers))
	errs := make(chan error, len(customers))

	for _, customer := range customers {
		wg.Add(1)
		go func(customer CustomerFixture) {
			defer wg.Done()

			id, err := utils.GenerateID()
			if err != nil {
				errs <- fmt.Errorf("erro ao gerar ID para %s: %w", customer.Email, err)
				return
			}

			query, args, err := squirrel.
				Insert("customers").
				Columns("id", "name", "email", "image_url").
				Values(id, customer.Name, customer.Email, customer.ImageURL).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				errs <- fmt.Errorf("erro ao construir insert de cliente: %w", err)
				return
			}

			if _, err := s.conn.Exec(query, args...); err != nil {
				errs <- fmt.Errorf("erro ao inserir cliente %s: %w", customer.Email, err)
				return
			}

			mu.Lock()
			customerIDs[customer.Email] = id
			mu.Unlock()
		}(customer)
	}

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}

	s.logger.Infof("Tabela \"customers\" populada. %d clientes inseridos", len(customers))
	return customerIDs, nil
}

func (s *Seeder) seedInvoices(invoices []InvoiceFixture, customerIDs map[string]string) error {
	s.logger.Infof("Iniciando inserção de %d faturas...", len(invoices))

	var wg sync.WaitGroup
	errs := make(chan error, len(invoices))

	inserted := 0
	skipped := 0
	var mu sync.Mutex

	for _, invoice := range invoices {
		customerID, exists := customerIDs[invoice.CustomerEmail]
		if !exists {
			s.logger.Warnf("Cliente não encontrado para a fatura (email: %s)", invoice.CustomerEmail)
			skipped++
			continue
		}

		wg.Add(1)
		go func(invoice InvoiceFixture, customerID string) {
			defer wg.Done()

			date, err := time.Parse(time.DateOnly, invoice.Date)
			if err != nil {
				errs <- fmt.Errorf("erro ao interpretar data %q: %w", invoice.Date, err)
				return
			}

			id, err := utils.GenerateID()
			if err != nil {
				errs <- fmt.Errorf("erro ao gerar ID de fatura: %w", err)
				return
			}

			query, args, err := squirrel.
				Insert("invoices").
				Columns("id", "customer_id", "amount", "status", "date").
				Values(id, customerID, invoice.Amount, invoice.Status, date).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				errs <- fmt.Errorf("erro ao construir insert de fatura: %w", err)
				return
			}

			if _, err := s.conn.Exec(query, args...); err != nil {
				errs <- fmt.Errorf("erro ao inserir fatura de %s: %w", invoice.CustomerEmail, err)
				return
			}

			mu.Lock()
			inserted++
			mu.Unlock()
		}(invoice, customerID)
	}

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return err
	}

	s.logger.Infof("Tabela \"invoices\" populada. Inseridas: %d, ignoradas: %d", inserted, skipped)
	return nil
}

func (s *Seeder) seedRevenue(revenues []RevenueFixture) error {
	s.logger.Infof("Iniciando inserção de %d meses de faturamento...", len(revenues))

	var wg sync.WaitGroup
	errs := make(chan error, len(revenues))

	for _, revenue := range revenues {
		wg.Add(1)
		go func(revenue RevenueFixture) {
			defer wg.Done()

			query, args, err := squirrel.
				Insert("revenue").
				Columns("month", "revenue").
				Values(revenue.Month, revenue.Revenue).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				errs <- fmt.Errorf("erro ao construir insert de revenue: %w", err)
				return
			}

			if _, err := s.conn.Exec(query, args...); err != nil {
				errs <- fmt.Errorf("erro ao inserir revenue %s: %w", revenue.Month, err)
			}
		}(revenue)
	}

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return err
	}

	s.logger.Infof("Tabela \"revenue\" populada. %d meses inseridos", len(revenues))
	return nil
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const customersTable = "customers c"

type CustomerRepository interface {
	ListNames() ([]*domain.CustomerField, error)
	CountCustomers() (int64, error)
	ListFilteredWithTotals(query string) ([]*domain.CustomersTableRow, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

// ListNames retorna id e nome de todos os clientes, ordenados por nome.
func (r *customerRepository) ListNames() ([]*domain.CustomerField, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From("customers").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.CustomerField, 0)
	for rows.Next() {
		var customer domain.CustomerField
		if err := rows.Scan(&customer.ID, &customer.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) CountCustomers() (int64, error) {
	query, _, err := squirrel.
		Select("COUNT(*)").
		From("customers").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// ListFilteredWithTotals busca clientes por nome ou email (case-insensitive,
// parametrizado) e agrega as faturas de cada um: contagem e somas condicionais
// de pendente/pago, em centavos. LEFT JOIN mantém clientes sem fatura.
func (r *customerRepository) ListFilteredWithTotals(searchQuery string) ([]*domain.CustomersTableRow, error) {
	pattern := fmt.Sprint("%", searchQuery, "%")

	query, args, err := squirrel.
		Select(
			"c.id",
			"c.name",
			"c.email",
			"c.image_url",
			"COUNT(i.id) AS total_invoices",
			"COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending",
			"COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0) AS total_paid",
		).
		From(customersTable).
		LeftJoin("invoices i ON c.id = i.customer_id").
		Where(squirrel.Or{
			squirrel.ILike{"c.name": pattern},
			squirrel.ILike{"c.email": pattern},
		}).
		GroupBy("c.id", "c.name", "c.email", "c.image_url").
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.CustomersTableRow, 0)
	for rows.Next() {
		var customer domain.CustomersTableRow
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.ImageURL,
			&customer.TotalInvoices,
			&customer.TotalPending,
			&customer.TotalPaid,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const (
	invoicesTable     = "invoices i"
	joinCustomersExpr = "customers c ON i.customer_id = c.id"
)

type InvoiceRepository interface {
	ListLatest(limit uint64) ([]*domain.LatestInvoiceRaw, error)
	CountInvoices() (int64, error)
	SumAmountByStatus() (*domain.InvoiceStatusTotals, error)
	ListFiltered(query string, offset, limit uint64) ([]*domain.InvoicesTableRow, error)
	CountFiltered(query string) (int64, error)
	GetByID(invoiceID string) (*domain.Invoice, error)
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

// invoiceSearchFilter monta o OR de busca textual sobre os cinco campos.
// Tudo vai como parâmetro posicional ($n); a entrada do usuário nunca é
// interpolada no SQL.
func invoiceSearchFilter(searchQuery string) squirrel.Or {
	pattern := fmt.Sprint("%", searchQuery, "%")
	return squirrel.Or{
		squirrel.ILike{"c.name": pattern},
		squirrel.ILike{"c.email": pattern},
		squirrel.Expr("i.amount::text ILIKE ?", pattern),
		squirrel.Expr("i.date::text ILIKE ?", pattern),
		squirrel.ILike{"i.status": pattern},
	}
}

// ListLatest retorna as faturas mais recentes com os dados do cliente.
// Amount permanece em centavos; quem formata é a camada de cima.
func (r *invoiceRepository) ListLatest(limit uint64) ([]*domain.LatestInvoiceRaw, error) {
	query, args, err := squirrel.
		Select("i.amount, c.name, c.image_url, c.email, i.id").
		From(invoicesTable).
		Join(joinCustomersExpr).
		OrderBy("i.date DESC").
		Limit(limit).
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

	invoices := make([]*domain.LatestInvoiceRaw, 0)
	for rows.Next() {
		var invoice domain.LatestInvoiceRaw
		if err := rows.Scan(
			&invoice.Amount,
			&invoice.Name,
			&invoice.ImageURL,
			&invoice.Email,
			&invoice.ID,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) CountInvoices() (int64, error) {
	query, _, err := squirrel.
		Select("COUNT(*)").
		From("invoices").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar faturas: %w", err)
	}

	return count, nil
}

// SumAmountByStatus soma pago e pendente em uma única passada com SUM(CASE).
func (r *invoiceRepository) SumAmountByStatus() (*domain.InvoiceStatusTotals, error) {
	query, _, err := squirrel.
		Select(
			"COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid",
			"COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending",
		).
		From("invoices").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.InvoiceStatusTotals{}
	if err := r.conn.QueryRow(query).Scan(&totals.Paid, &totals.Pending); err != nil {
		return nil, fmt.Errorf("erro ao somar faturas por status: %w", err)
	}

	return totals, nil
}

// ListFiltered busca faturas cujo cliente, valor, data ou status contenham o
// termo (case-insensitive, OR entre os cinco campos), ordenadas da mais
// recente para a mais antiga.
func (r *invoiceRepository) ListFiltered(searchQuery string, offset, limit uint64) ([]*domain.InvoicesTableRow, error) {
	query, args, err := squirrel.
		Select(
			"i.id",
			"i.customer_id",
			"i.amount",
			"i.date",
			"i.status",
			"c.name",
			"c.email",
			"c.image_url",
		).
		From(invoicesTable).
		Join(joinCustomersExpr).
		Where(invoiceSearchFilter(searchQuery)).
		OrderBy("i.date DESC").
		Limit(limit).
		Offset(offset).
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

	invoices := make([]*domain.InvoicesTableRow, 0)
	for rows.Next() {
		var invoice domain.InvoicesTableRow
		if err := rows.Scan(
			&invoice.ID,
			&invoice.CustomerID,
			&invoice.Amount,
			&invoice.Date,
			&invoice.Status,
			&invoice.Name,
			&invoice.Email,
			&invoice.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}

// CountFiltered usa exatamente o mesmo WHERE de ListFiltered.
func (r *invoiceRepository) CountFiltered(searchQuery string) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(invoicesTable).
		Join(joinCustomersExpr).
		Where(invoiceSearchFilter(searchQuery)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar faturas filtradas: %w", err)
	}

	return count, nil
}

// GetByID retorna nil sem erro quando a fatura não existe; ausência não é
// falha e cabe ao chamador tratá-la.
func (r *invoiceRepository) GetByID(invoiceID string) (*domain.Invoice, error) {
	query, args, err := squirrel.
		Select("i.id", "i.customer_id", "i.amount", "i.status", "i.date").
		From(invoicesTable).
		Where(squirrel.Eq{"i.id": invoiceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var invoice domain.Invoice
	err = r.conn.QueryRow(query, args...).Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&invoice.Amount,
		&invoice.Status,
		&invoice.Date,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fatura: %w", err)
	}

	return &invoice, nil
}

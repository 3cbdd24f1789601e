package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
)

const revenueTable = "revenue"

type RevenueRepository interface {
	ListRevenue() ([]*domain.Revenue, error)
}

type revenueRepository struct {
	conn *postgres.Connection
}

func NewRevenueRepository(conn *postgres.Connection) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

// ListRevenue retorna todas as linhas na ordem natural do banco, sem filtro.
func (r *revenueRepository) ListRevenue() ([]*domain.Revenue, error) {
	query, args, err := squirrel.
		Select("month", "revenue").
		From(revenueTable).
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

	revenues := make([]*domain.Revenue, 0)
	for rows.Next() {
		var revenue domain.Revenue
		if err := rows.Scan(&revenue.Month, &revenue.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear revenue: %w", err)
		}
		revenues = append(revenues, &revenue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return revenues, nil
}

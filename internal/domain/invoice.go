package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice é a linha persistida. Amount fica sempre em centavos (unidade
// monetária mínima); a conversão para unidades acontece apenas na borda do
// formulário de edição (InvoiceForm).
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       time.Time     `json:"date"`
}

// LatestInvoiceRaw é a projeção crua das últimas faturas (join com customers),
// com o valor ainda em centavos.
type LatestInvoiceRaw struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   int64  `json:"amount"`
}

// LatestInvoice é a mesma projeção com Amount já formatado como moeda.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// InvoicesTableRow é uma linha da busca paginada de faturas. Amount permanece
// em centavos, sem divisão.
type InvoicesTableRow struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	ImageURL   string        `json:"image_url"`
	Date       time.Time     `json:"date"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// InvoiceForm é o resultado da busca por ID, consumido pelo formulário de
// edição: Amount vem dividido por 100 (centavos -> unidades). As listagens
// não fazem essa divisão; a assimetria é proposital.
type InvoiceForm struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// InvoiceStatusTotals é o resultado da soma condicional por status, calculada
// em uma única passada sobre a tabela.
type InvoiceStatusTotals struct {
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}

// CardSummary agrega os números dos cards do painel. Os totais já vêm
// formatados como moeda; as contagens ficam numéricas.
type CardSummary struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

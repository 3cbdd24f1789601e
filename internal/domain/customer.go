package domain

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerField é a projeção mínima usada em selects de formulário.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomersTableRow é uma linha da busca de clientes com os agregados de
// faturas; os totais ficam em centavos.
type CustomersTableRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  int64  `json:"total_pending"`
	TotalPaid     int64  `json:"total_paid"`
}

// FormattedCustomersTableRow é a mesma linha com os totais formatados como
// moeda, pronta para a camada de apresentação.
type FormattedCustomersTableRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

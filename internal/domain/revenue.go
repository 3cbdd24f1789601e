package domain

// Revenue é o faturamento agregado de um mês. Month é o código de 3 letras
// ("Jan", "Feb", ...), único por mês no banco.
type Revenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

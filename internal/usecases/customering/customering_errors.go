package customering

import "errors"

// ErrCustomerTableFetch é o erro genérico exposto ao chamador quando a busca
// de clientes falha; a causa original fica apenas nos logs do servidor.
var ErrCustomerTableFetch = errors.New("failed to fetch customer table")

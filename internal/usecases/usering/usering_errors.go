package usering

import "errors"

// ErrUserFetch é o erro genérico exposto ao chamador quando a consulta de
// usuário falha; o detalhe fica só nos logs.
var ErrUserFetch = errors.New("failed to fetch user")

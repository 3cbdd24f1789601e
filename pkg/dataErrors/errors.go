package dataErrors

import (
	"errors"
	"fmt"
)

// Códigos de erro da camada de dados
const (
	// Erros de banco de dados (DB)
	ErrDatabaseOperation = "DB_001" // Falha genérica de consulta
	ErrPoolExhausted     = "DB_002" // Pool sem conexões e sem fila disponível
	ErrRowMapping        = "DB_003" // Linha com formato inesperado

	// Erros de consulta wrapped (o detalhe fica só no log do servidor)
	ErrCustomerTable = "QRY_001" // Falha na tabela de clientes
	ErrUserLookup    = "QRY_002" // Falha na busca de usuário
)

// QueryError carrega a causa estruturada internamente (para logs) e expõe ao
// chamador apenas o erro sentinela estável e um detalhe genérico — duas
// camadas em vez de lavagem de mensagem em string.
type QueryError struct {
	Err     error  // Erro sentinela exposto ao chamador
	Code    string // Código de erro da camada de dados
	Details string // Detalhe genérico adicional
}

// Error implementa a interface error
func (e *QueryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro sentinela subjacente
func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError cria um erro de consulta com código e detalhe
func NewQueryError(baseErr error, code string, details string) *QueryError {
	return &QueryError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// CodeOf extrai o código de um erro da camada de dados, se houver
func CodeOf(err error) string {
	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		return queryErr.Code
	}
	return ""
}

package postgres

import (
	"database/sql"
)

// Queryer é o recorte de *sql.DB que os repositórios consomem. Cada chamada
// toma uma conexão emprestada do pool e a devolve ao terminar, inclusive em
// caso de erro.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

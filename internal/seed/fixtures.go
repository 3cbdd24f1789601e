package seed

import (
	_ "embed"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

//go:embed fixtures.json
var fixturesJSON []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type UserFixture struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CustomerFixture struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// InvoiceFixture referencia o cliente pelo email; o seed resolve o ID gerado
// antes de inserir, por causa da chave estrangeira.
type InvoiceFixture struct {
	CustomerEmail string `json:"customer_email"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

type RevenueFixture struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type Fixtures struct {
	Users     []UserFixture     `json:"users"`
	Customers []CustomerFixture `json:"customers"`
	Invoices  []InvoiceFixture  `json:"invoices"`
	Revenue   []RevenueFixture  `json:"revenue"`
}

// LoadFixtures decodifica as linhas de carga embutidas no binário.
func LoadFixtures() (*Fixtures, error) {
	fixtures := &Fixtures{}
	if err := json.Unmarshal(fixturesJSON, fixtures); err != nil {
		return nil, fmt.Errorf("erro ao decodificar fixtures: %w", err)
	}
	return fixtures, nil
}

package domain

// User guarda apenas o hash bcrypt em Password; a senha em texto puro nunca
// chega ao banco nem sai dele.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

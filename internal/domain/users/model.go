package users

// User es una cuenta del petstore. Username es único a nivel global y
// funciona como clave natural: get/update/delete operan por username,
// no por id. El ID numérico lo asigna el repositorio en el alta.
type User struct {
	ID        *uint64 `json:"id,omitempty"`
	Username  string  `json:"username"`
	FirstName string  `json:"firstName,omitempty"`
	LastName  string  `json:"lastName,omitempty"`
	Email     string  `json:"email,omitempty"`
	Password  string  `json:"password"`
	Phone     string  `json:"phone,omitempty"`
}

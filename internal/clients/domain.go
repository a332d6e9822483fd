package clients

import "time"

// Client represents a gym member managed from the admin screens.
type Client struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Document  string    `json:"document"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	SedeID    string    `json:"sede_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName devuelve "Apellido, Nombre" como lo muestra el listado.
func (c *Client) FullName() string {
	return c.LastName + ", " + c.FirstName
}

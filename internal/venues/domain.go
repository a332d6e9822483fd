package venues

import "time"

// Sede is a physical venue/branch of the gym chain.
type Sede struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Espacio is a bookable space/area inside a sede (sala de musculación,
// salón de clases, etc.).
type Espacio struct {
	ID        string    `json:"id"`
	SedeID    string    `json:"sede_id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

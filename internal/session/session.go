package session

// Role identifica el nivel de acceso del usuario logueado.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleSeller  Role = "seller"
)

// Session holds the logged-in user's identity and default venue. It is
// built once at startup (or login) and passed explicitly into the router,
// instead of being read from a shared global.
type Session struct {
	UserID string
	Name   string
	Role   Role
	SedeID string
}

// CanDelete reports whether the session's role may delete entities.
func (s Session) CanDelete() bool {
	return s.Role == RoleAdmin
}

// SeesAllSedes reports whether listings should span every venue or be
// scoped to the session's default sede.
func (s Session) SeesAllSedes() bool {
	return s.Role == RoleAdmin
}

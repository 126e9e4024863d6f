package entity

// Roles válidos en el token.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Identity es la identidad del llamador resuelta por el middleware de autenticación.
// CompanyID es el único límite de tenencia para toda operación.
type Identity struct {
	UserID    string
	CompanyID string
	Role      string
}

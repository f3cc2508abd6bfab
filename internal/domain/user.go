package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

type User struct {
	ID             int32  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Identification string `json:"identification,omitempty"` // human-readable id number on the worker badge
	Role           Role   `json:"role"`
	PasswordHash   string `json:"-"`
	CreatedOn      string `json:"created_on"`
}

// Actor is the authenticated identity performing a lifecycle call. It is
// passed explicitly into every service method; there is no ambient session.
type Actor struct {
	UserID int32
	Role   Role
}

// IsAdmin is the capability check gating admin-only transitions.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

package model

// Role labels a user account. Stored as-is in the users table.
type Role string

const (
	RoleAdministrator  Role = "Administrator"
	RoleStandardClient Role = "Standard Client"
)

// User is a seeded account. The system never creates or mutates users itself.
type User struct {
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Role     Role   `db:"role" json:"role"`
}

package domain

// Role defines the permission level of a user.
type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access, including user administration
	RoleOperator Role = "OPERATOR" // May manage accounts, titles and entries
	RoleViewer   Role = "VIEWER"   // Read-only access and report generation
)

// roleRank orders roles for minimum-role checks.
var roleRank = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

// Satisfies reports whether the role grants at least the required level.
func (r Role) Satisfies(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// User is an authenticated operator of the back office.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

package user

type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleUser || r == RoleAdmin
}

// CanCreate: any authenticated role may create records.
func (r Role) CanCreate() bool {
	return r == RoleUser || r == RoleAdmin
}

// CanManage gates batch admin operations and admin affordances.
func (r Role) CanManage() bool {
	return r == RoleAdmin
}

// CanEdit: admins edit anything; regular users edit only records flagged as
// custom. Authorship identity is deliberately not checked beyond the flag,
// mirroring the source behavior (see DESIGN.md).
func (r Role) CanEdit(isCustom bool) bool {
	if r == RoleAdmin {
		return true
	}
	return r == RoleUser && isCustom
}

// User is an account record. PasswordHash is a bcrypt hash; the plaintext
// never leaves the auth service.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	Email        string `json:"email,omitempty"`
}

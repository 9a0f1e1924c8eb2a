package user

import "time"

// User is the identity record. Password is an opaque credential compared by
// equality at login; it is blanked before a User leaves the usecase layer.
type User struct {
	ID        int64
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	Bio       string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleAgent   = "agent"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

func (u User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CanDecide reports whether the user may record approval decisions.
func (u User) CanDecide() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

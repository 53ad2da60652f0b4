package users

// Role of an authenticated principal.
//
// The backend auth service is the source of truth; the client only
// carries the value around for screen gating.
type Role string

const (
	User    Role = "USER"
	Admin   Role = "ADMIN"
	Courier Role = "COURIER"
)

// KnownRole returns true if r is one of the roles this client understands.
func KnownRole(r Role) bool {
	switch r {
	case User, Admin, Courier:
		return true
	default:
		return false
	}
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the auth service's answer to a successful login.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Message  string `json:"message,omitempty"`
}

func (l *LoginResult) Equal(o *LoginResult) bool {
	if l == nil || o == nil {
		return (l == nil) && (o == nil)
	}
	return l.Token == o.Token &&
		l.UserID == o.UserID &&
		l.Username == o.Username &&
		l.Role == o.Role
}

type Summary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

func (s *Summary) Equal(o *Summary) bool {
	if s == nil || o == nil {
		return (s == nil) && (o == nil)
	}
	return s.ID == o.ID &&
		s.Username == o.Username &&
		s.Email == o.Email &&
		s.Role == o.Role
}

// RoleChange is the payload of the admin "update user's role" operation.
type RoleChange struct {
	Role Role `json:"role"`
}

package user

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a storefront account. Only admins exist in practice; shoppers
// check out without an account.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

package models

// User is an entry in the user directory. The same record backs both the
// admin user-management screen and login/signup credential checks; there is
// no separate "registered users" list.
type User struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	PasswordHash string `json:"password_hash,omitempty"`
	Status       string `json:"status"`
	JoinDate     string `json:"join_date"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// UserPatch carries the directory fields an update is allowed to touch.
// Nil pointers leave the existing value alone.
type UserPatch struct {
	FullName *string
	Email    *string
	Phone    *string
	Address  *string
	Role     *string
	Avatar   *string
	Status   *string
}

func (p UserPatch) Apply(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}

// Sanitized returns a copy safe to hand to the session or render layers.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

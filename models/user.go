package models

import "foodie-express-api/store"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	store.Meta
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"` // bcrypt hash, never the clear text
	Role     UserRole `json:"role"`
}

// Public returns the user without the credential, for API responses.
func (u *User) Public() *User {
	pub := *u
	pub.Password = ""
	return &pub
}

// UserRepo exposes the users collection.
type UserRepo struct {
	c *store.Collection[*User]
}

func (r *UserRepo) Create(u *User) *User { return r.c.Insert(u) }

func (r *UserRepo) FindByID(id string) (*User, bool) { return r.c.FindByID(id) }

func (r *UserRepo) FindByEmail(email string) (*User, bool) {
	return r.c.FindOne(func(u *User) bool { return u.Email == email })
}

func (r *UserRepo) FindAll() []*User { return r.c.ReadAll() }

package auth

// Role decides which part of the application a user sees after login.
// It is a navigation hint, not an authorization boundary.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// User is one entry of the fixed login roster.
type User struct {
	ID       string `yaml:"id" json:"id"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"-"`
	Name     string `yaml:"name" json:"name"`
	Role     Role   `yaml:"role" json:"role"`
}

// Roster is the set of users allowed to log in.
type Roster struct {
	users []User
}

// NewRoster builds a roster from a user list.
func NewRoster(users []User) *Roster {
	return &Roster{users: users}
}

// Users returns the roster entries.
func (r *Roster) Users() []User {
	return r.users
}

// Authenticate checks (username, password) against the roster by exact
// match. Deliberately a plaintext comparison: the roster is a small fixed
// class list and login only selects a navigation role.
func (r *Roster) Authenticate(username, password string) (User, bool) {
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return User{}, false
}

// UserByID looks up a roster entry by id.
func (r *Roster) UserByID(id string) (User, bool) {
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// DefaultRoster returns the built-in class roster.
func DefaultRoster() *Roster {
	return NewRoster([]User{
		{ID: "teacher-vlad", Username: "Vladislav", Password: "Vladislav15", Name: "Ermilov Vladislav", Role: RoleTeacher},
		{ID: "student-oksana", Username: "Oksana", Password: "Oksana25", Name: "Yurchenko Oksana", Role: RoleStudent},
		{ID: "student-alex", Username: "Alexander", Password: "Alexander23", Name: "Ermilov Alexander", Role: RoleStudent},
	})
}

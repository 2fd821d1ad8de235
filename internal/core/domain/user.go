package domain

// User is a dashboard account. The password is stored exactly as supplied;
// hashing is out of scope for this layer.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// InsertUser is the creation payload for a user.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewUser builds a full User from the payload and the generated id.
func (p InsertUser) NewUser(id string) User {
	return User{ID: id, Username: p.Username, Password: p.Password}
}

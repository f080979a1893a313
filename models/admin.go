package models

// Admin is a dashboard operator. Admin credentials are not envelope-protected:
// the username is plain text and the password is a bcrypt hash.
type Admin struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
}

// TableName returns the name of the database table associated with the
// admin model.
func (Admin) TableName() string {
	return "admins"
}

// Credentials is the body of both admin and scanner login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by successful logins. The token is also sent in
// the Authorization header.
type LoginResponse struct {
	Token   string   `json:"token"`
	Admin   *Admin   `json:"admin,omitempty"`
	Scanner *Scanner `json:"scanner,omitempty"`
}

package domain

// User is a registered account in the auth store. PasswordHash is a bcrypt
// digest; the clear-text password never leaves the signup handler.
type User struct {
	Email        string
	PasswordHash string
	Name         string
}

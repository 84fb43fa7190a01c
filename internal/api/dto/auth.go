package dto

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type AuthUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned with HTTP 200 even on auth-domain failures;
// Success carries the outcome (original client contract).
type AuthResponse struct {
	Success bool      `json:"success"`
	User    *AuthUser `json:"user,omitempty"`
	Error   string    `json:"error,omitempty"`
}

package domain

// UserInfo is what the auth endpoints report about the logged-in user.
// Nickname is the identity used for display and ownership comparison.
type UserInfo struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest carries the signup form. PasswordConfirm is checked
// client-side and never sent to the server.
type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"-"`
	Nickname        string `json:"nickname"`
	Email           string `json:"email"`
	University      string `json:"university"`
}

package models

// User is read-only in this surface; accounts are managed by the remote API
type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Credentials is the transient login form payload. It lives only for the
// duration of one submit; on failure the form re-renders with the same
// values so the user can correct and retry.
type Credentials struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// SignUpRequest is the registration form payload
type SignUpRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

// LoginResponse is returned by both login endpoints
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// APIMessage is the `{msg}` envelope the remote API uses for mutations
type APIMessage struct {
	Msg string `json:"msg"`
}

package admin

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginResponse carries the bearer token for the admin dashboard.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

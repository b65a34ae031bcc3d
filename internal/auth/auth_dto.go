package auth

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Login    string `json:"login"`
	Function string `json:"function"`
	Role     string `json:"role"`
}

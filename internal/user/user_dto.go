package user

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	CPF      string `json:"cpf" binding:"required"`
	Function string `json:"function" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	Function  string `json:"function"`
	Login     string `json:"login"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// EmployeeOption is the minimal shape used by report filters.
type EmployeeOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

package dto

// CreateUserRequest for registering an operator account.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=4"`
	Role     string `json:"role" binding:"required,oneof=admin pharmacist cashier"`
}

// UpdateUserRequest for editing an account. An empty password keeps the
// stored one.
type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"required,oneof=admin pharmacist cashier"`
}

// AnnualCountRequest starts a year-end inventory reset.
type AnnualCountRequest struct {
	Notes string `json:"notes"`
}

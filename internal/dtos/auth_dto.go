package dtos

import "github.com/apptrackr/backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Email string `json:"email" binding:"required,email"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldpassword"`
	Password    string `json:"password"`
}

// UserResponse is the payload returned by every auth endpoint. The password
// hash never leaves the model layer.
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	ID    uint   `json:"id"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{Email: u.Email, Name: u.Name, ID: u.ID}
}

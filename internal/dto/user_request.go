package dto

type UserRequest struct {
	ID       int64
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type OAuthRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type ProfileUpdateRequest struct {
	Email    string
	Name     string  `json:"name" validate:"required"`
	Phone    *string `json:"phone"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

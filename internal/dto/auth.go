package dto

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"fullName" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=ADMIN OFFICER"`
	CompanyName string `json:"companyName"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Role        string `json:"role"`
	UserID      string `json:"userId"`
	CompanyName string `json:"companyName"`
}

package dto

import "contacts_backend/internal/models"

type SignupRequest struct {
	Email    string `json:"email" validate:"required,simple_email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,simple_email"`
	Password string `json:"password" validate:"required"`
}

// UserPayload is the user shape auth endpoints expose. The password hash
// and tokens never leave the service layer.
type UserPayload struct {
	Email        string              `json:"email"`
	Subscription models.Subscription `json:"subscription"`
}

type SignupResponse struct {
	User UserPayload `json:"user"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,simple_email"`
}

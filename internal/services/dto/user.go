package dto

import "contacts_backend/internal/models"

type UpdateSubscriptionRequest struct {
	Subscription models.Subscription `json:"subscription" validate:"required,subscription"`
}

type CurrentUserResponse struct {
	Email        string              `json:"email"`
	Subscription models.Subscription `json:"subscription"`
}

type UpdateSubscriptionResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

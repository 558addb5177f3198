package dto

import "contacts_backend/internal/models"

// ContactRequest is the body for create and full update. The same rules
// the record schema enforces apply here, before any store call.
type ContactRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,simple_email"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Favorite *bool  `json:"favorite" validate:"omitempty"`
}

// UpdateFavoriteRequest requires the favorite field to be present; a
// missing field is a validation error, not a default. Presence is checked
// in the handler because a dereferenced false would trip `required`.
type UpdateFavoriteRequest struct {
	Favorite *bool `json:"favorite"`
}

type ListContactsQuery struct {
	Page     int   `form:"page"`
	Limit    int   `form:"limit"`
	Favorite *bool `form:"favorite"`
}

type ContactListResponse struct {
	Data          []models.Contact `json:"data"`
	TotalContacts int64            `json:"totalContacts"`
	TotalPages    int              `json:"totalPages"`
	CurrentPage   int              `json:"currentPage"`
}

type ContactResponse struct {
	Message string          `json:"message,omitempty"`
	Data    *models.Contact `json:"data"`
}

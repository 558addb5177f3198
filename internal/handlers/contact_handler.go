package handlers

import (
	"net/http"

	"contacts_backend/internal/services"
	"contacts_backend/internal/services/dto"
	"contacts_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) List(c *gin.Context) {
	var query dto.ListContactsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	response, err := h.contactService.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ContactHandler) GetByID(c *gin.Context) {
	contact, err := h.contactService.GetByID(c.Param("contactId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ContactResponse{Data: contact})
}

func (h *ContactHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.Update(c.Param("contactId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) UpdateFavorite(c *gin.Context) {
	var req dto.UpdateFavoriteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	if req.Favorite == nil {
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{
			"favorite": "favorite is a required field",
		}))
		return
	}

	contact, err := h.contactService.UpdateFavorite(c.Param("contactId"), *req.Favorite)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Remove(c *gin.Context) {
	if err := h.contactService.Remove(c.Param("contactId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

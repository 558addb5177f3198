package handlers

import (
	"net/http"

	"contacts_backend/internal/services"
	"contacts_backend/internal/services/dto"
	"contacts_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService   services.UserService
	avatarService services.AvatarService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, avatarService services.AvatarService) *UserHandler {
	return &UserHandler{
		BaseHandler:   base,
		userService:   userService,
		avatarService: avatarService,
	}
}

func (h *UserHandler) GetCurrent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CurrentUserResponse{
		Email:        user.Email,
		Subscription: user.Subscription,
	})
}

// UpdateSubscription only lets a user change their own plan.
func (h *UserHandler) UpdateSubscription(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if c.Param("userId") != userID {
		h.HandleServiceError(c, apperrors.NewForbiddenError("You can only change your own subscription"))
		return
	}

	var req dto.UpdateSubscriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateSubscription(userID, req.Subscription)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateSubscriptionResponse{
		Message: "Subscription updated",
		User: dto.UserPayload{
			Email:        user.Email,
			Subscription: user.Subscription,
		},
	})
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("avatar file is required"))
		return
	}

	avatarURL, err := h.avatarService.ProcessAvatar(c.Request.Context(), userID, fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvatarResponse{AvatarURL: avatarURL})
}

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-direct/errors"
	"chat-direct/repositories"
	"chat-direct/services"
)

type UserHandler struct {
	profiles services.IProfileService
}

func NewUserHandler(profiles services.IProfileService) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// List returns every user except the caller, for the conversation roster.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.profiles.Roster(callerID(c))
	if err != nil {
		c.JSON(errors.MapToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toUserResponses(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.profiles.Profile(c.Param("id"))
	if err != nil {
		c.JSON(errors.MapToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

type profileUpdateRequest struct {
	Username   *string `json:"username"`
	StatusText *string `json:"statusText"`
	Avatar     *string `json:"avatar"`
}

// UpdateProfile patches the caller's own profile; absent fields are left
// untouched.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profiles.UpdateProfile(callerID(c), repositories.ProfileUpdate{
		Username:   req.Username,
		StatusText: req.StatusText,
		Avatar:     req.Avatar,
	})
	if err != nil {
		c.JSON(errors.MapToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

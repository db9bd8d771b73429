package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillshare-lk/user-service/internal/services"
	"github.com/skillshare-lk/user-service/internal/storage"
	"github.com/skillshare-lk/user-service/internal/utils"
	"github.com/skillshare-lk/user-service/internal/validator"
)

type AuthHandler struct {
	BaseHandler
	service services.AuthService
	storage storage.Storage
}

func NewAuthHandler(service services.AuthService, store storage.Storage, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		storage:     store,
	}
}

// Signup registers a new account from a multipart form. The optional
// profilePhoto file is stored before the gateway runs so its rejection
// (size/type) never creates a user.
func (h *AuthHandler) Signup(c *gin.Context) {
	h.LogRequest(c, "Signing up user")

	var req validator.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Details: err.Error(),
		})
		return
	}

	if file, err := c.FormFile("profilePhoto"); err == nil && file != nil {
		path, err := h.storage.SaveProfilePhoto(file)
		if err != nil {
			if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrUnsupportedType) {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			h.LogError(c, err, "Failed to store profile photo")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}
		req.ProfilePhotoPath = &path
	}

	resp, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login authenticates an existing account.
func (h *AuthHandler) Login(c *gin.Context) {
	h.LogRequest(c, "Logging in user")

	var req validator.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfile returns the caller's public view.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	view, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

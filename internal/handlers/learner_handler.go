package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillshare-lk/user-service/internal/repositories"
	"github.com/skillshare-lk/user-service/internal/services"
	"github.com/skillshare-lk/user-service/internal/utils"
	"github.com/skillshare-lk/user-service/internal/validator"
)

type LearnerHandler struct {
	BaseHandler
	service services.LearnerService
}

func NewLearnerHandler(service services.LearnerService, logger utils.Logger) *LearnerHandler {
	return &LearnerHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateProfile creates the caller's learner profile.
func (h *LearnerHandler) CreateProfile(c *gin.Context) {
	h.LogRequest(c, "Creating learner profile")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req validator.CreateLearnerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Details: err.Error(),
		})
		return
	}

	profile, err := h.service.CreateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetProfile returns the caller's learner profile.
func (h *LearnerHandler) GetProfile(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the caller's learner profile.
func (h *LearnerHandler) UpdateProfile(c *gin.Context) {
	h.LogRequest(c, "Updating learner profile")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req validator.UpdateLearnerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Details: err.Error(),
		})
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProgress adjusts the caller's aggregate course counters.
func (h *LearnerHandler) UpdateProgress(c *gin.Context) {
	h.LogRequest(c, "Updating learner progress")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req validator.UpdateLearnerProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Details: err.Error(),
		})
		return
	}

	profile, err := h.service.UpdateProgress(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteProfile removes the caller's learner profile.
func (h *LearnerHandler) DeleteProfile(c *gin.Context) {
	h.LogRequest(c, "Deleting learner profile")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), userID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List returns learner profiles with optional skill-level and interest
// filters.
func (h *LearnerHandler) List(c *gin.Context) {
	filters := repositories.LearnerFilters{}
	filters.Limit, filters.Offset = parsePagination(c)

	if level := c.Query("skill_level"); level != "" {
		filters.SkillLevel = &level
	}
	if interest := c.Query("interest"); interest != "" {
		filters.Interest = &interest
	}

	profiles, total, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"learners": profiles,
		"total":    total,
	})
}

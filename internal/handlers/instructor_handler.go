package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillshare-lk/user-service/internal/repositories"
	"github.com/skillshare-lk/user-service/internal/services"
	"github.com/skillshare-lk/user-service/internal/utils"
	"github.com/skillshare-lk/user-service/internal/validator"
)

type InstructorHandler struct {
	BaseHandler
	service services.InstructorService
}

func NewInstructorHandler(service services.InstructorService, logger utils.Logger) *InstructorHandler {
	return &InstructorHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateProfile creates the caller's instructor profile.
func (h *InstructorHandler) CreateProfile(c *gin.Context) {
	h.LogRequest(c, "Creating instructor profile")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req validator.CreateInstructorProfileRequest
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

// GetProfile returns the caller's instructor profile.
func (h *InstructorHandler) GetProfile(c *gin.Context) {
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

// UpdateProfile applies a partial update to the caller's instructor profile.
func (h *InstructorHandler) UpdateProfile(c *gin.Context) {
	h.LogRequest(c, "Updating instructor profile")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req validator.UpdateInstructorProfileRequest
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

// DeleteProfile removes the caller's instructor profile.
func (h *InstructorHandler) DeleteProfile(c *gin.Context) {
	h.LogRequest(c, "Deleting instructor profile")

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

// List returns instructor profiles with optional experience and expertise
// filters.
func (h *InstructorHandler) List(c *gin.Context) {
	filters := repositories.InstructorFilters{}
	filters.Limit, filters.Offset = parsePagination(c)

	if minExp := c.Query("min_experience"); minExp != "" {
		if n, err := strconv.Atoi(minExp); err == nil && n >= 0 {
			filters.MinExperience = &n
		}
	}
	if expertise := c.Query("expertise"); expertise != "" {
		filters.Expertise = &expertise
	}

	profiles, total, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"instructors": profiles,
		"total":       total,
	})
}

// GetStudents returns the students enrolled in the caller's courses.
func (h *InstructorHandler) GetStudents(c *gin.Context) {
	h.LogRequest(c, "Getting instructor students")

	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	students, err := h.service.GetStudents(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"students": students,
		"total":    len(students),
	})
}

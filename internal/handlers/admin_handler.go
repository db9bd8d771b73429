package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
	"github.com/skillshare-lk/user-service/internal/services"
	"github.com/skillshare-lk/user-service/internal/utils"
	"github.com/skillshare-lk/user-service/internal/validator"
)

type AdminHandler struct {
	BaseHandler
	admin  services.AdminService
	report services.ReportService
}

func NewAdminHandler(admin services.AdminService, report services.ReportService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		admin:       admin,
		report:      report,
	}
}

func userFiltersFromQuery(c *gin.Context) repositories.UserFilters {
	filters := repositories.UserFilters{}
	filters.Limit, filters.Offset = parsePagination(c)

	if roleStr := c.Query("role"); roleStr != "" {
		role := models.UserRole(roleStr)
		filters.Role = &role
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := models.UserStatus(statusStr)
		filters.Status = &status
	}
	return filters
}

// ListUsers returns the paginated user listing, newest first.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	h.LogRequest(c, "Listing users")

	users, total, err := h.admin.ListUsers(c.Request.Context(), userFiltersFromQuery(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
	})
}

// GetStats returns aggregate account counts.
func (h *AdminHandler) GetStats(c *gin.Context) {
	h.LogRequest(c, "Getting user stats")

	stats, err := h.admin.GetStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpdateUserStatus changes an account's status. Accounts are never deleted;
// this is the only admin mutation.
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	h.LogRequest(c, "Updating user status")

	adminID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req validator.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Details: err.Error(),
		})
		return
	}

	view, err := h.admin.UpdateUserStatus(c.Request.Context(), adminID, c.Param("userId"), req.Status)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ExportUsers streams the user listing as an xlsx download.
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	h.LogRequest(c, "Exporting users")

	data, err := h.report.ExportUsers(c.Request.Context(), userFiltersFromQuery(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := "users-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

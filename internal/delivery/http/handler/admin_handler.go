package handler

import (
	"net/http"
	"strconv"

	"github.com/gdugdh24/lifestyle-connect/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewAdminHandler(profileUseCase *profile.ProfileUseCase) *AdminHandler {
	return &AdminHandler{
		profileUseCase: profileUseCase,
	}
}

// SetHiddenRequest toggles a profile's visibility
type SetHiddenRequest struct {
	Hidden *bool `json:"hidden" binding:"required"`
}

// SetProfileHidden handles PUT /admin/profiles/:id/hidden
// @Summary Hide or restore a profile
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param request body SetHiddenRequest true "Visibility"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/profiles/{id}/hidden [put]
func (h *AdminHandler) SetProfileHidden(c *gin.Context) {
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid id",
		})
		return
	}

	var req SetHiddenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	if err := h.profileUseCase.SetHidden(c.Request.Context(), profileID, *req.Hidden); err != nil {
		writeError(c, err, "failed to update profile visibility")
		return
	}

	message := "profile restored"
	if *req.Hidden {
		message = "profile hidden"
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

package handler

import (
	"net/http"

	"github.com/gdugdh24/lifestyle-connect/internal/usecase/upgrade"
	"github.com/gin-gonic/gin"
)

type UpgradeHandler struct {
	upgradeUseCase *upgrade.UpgradeUseCase
}

func NewUpgradeHandler(upgradeUseCase *upgrade.UpgradeUseCase) *UpgradeHandler {
	return &UpgradeHandler{
		upgradeUseCase: upgradeUseCase,
	}
}

// Attempt handles POST /upgrade/attempt
// @Summary Try a gated feed control
// @Description Applies the toggle when entitled, otherwise returns the upgrade offer
// @Tags upgrade
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body upgrade.ToggleRequest true "Toggle"
// @Success 200 {object} upgrade.ToggleResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /upgrade/attempt [post]
func (h *UpgradeHandler) Attempt(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req upgrade.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.upgradeUseCase.Attempt(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err, "failed to check upgrade")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Complete handles POST /upgrade/complete
// @Summary Pay for a gated feed control
// @Description Charges the offer, persists the new tier and applies the toggle
// @Tags upgrade
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body upgrade.ToggleRequest true "Toggle"
// @Success 200 {object} upgrade.ToggleResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /upgrade/complete [post]
func (h *UpgradeHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req upgrade.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.upgradeUseCase.Complete(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err, "upgrade failed, please try again")
		return
	}

	c.JSON(http.StatusOK, result)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrInvalidTier, http.StatusBadRequest},
	{domain.ErrCannotSwipeSelf, http.StatusBadRequest},
	{domain.ErrAxisNotOffered, http.StatusBadRequest},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrPaymentDeclined, http.StatusPaymentRequired},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrProfileNotFound, http.StatusNotFound},
	{domain.ErrCandidateNotVisible, http.StatusNotFound},
	{domain.ErrMatchNotFound, http.StatusNotFound},
	{domain.ErrPostNotFound, http.StatusNotFound},
	{domain.ErrProfileAlreadyExists, http.StatusConflict},
	{domain.ErrSwipeAlreadyExists, http.StatusConflict},
	{domain.ErrMatchAlreadyExists, http.StatusConflict},
	{domain.ErrUpgradeNotApplied, http.StatusConflict},
}

// writeError maps domain errors to their status. Anything unknown is a 500
// carrying fallback, and the cause is attached to the gin context for the
// request logger.
func writeError(c *gin.Context, err error, fallback string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			c.JSON(e.status, ErrorResponse{Error: e.err.Error()})
			return
		}
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
}

func currentUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return 0, false
	}
	id, ok := userID.(int)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return 0, false
	}
	return id, true
}

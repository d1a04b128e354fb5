package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/auth"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	tokenUseCase   *auth.TokenUseCase
	profileUseCase *profile.ProfileUseCase
}

func NewAuthHandler(tokenUseCase *auth.TokenUseCase, profileUseCase *profile.ProfileUseCase) *AuthHandler {
	return &AuthHandler{
		tokenUseCase:   tokenUseCase,
		profileUseCase: profileUseCase,
	}
}

// TestAuthRequest represents test authentication request
type TestAuthRequest struct {
	UserID int `json:"user_id" binding:"required,min=1"`
}

// AuthResponse is the response structure
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt int64           `json:"expires_at"`
	Profile   *domain.Profile `json:"profile,omitempty"`
	IsNewUser bool            `json:"is_new_user"`
}

// TestAuth issues a token for a user ID without an external sign-in (development only)
// @Summary Test authentication
// @Description Issue a bearer token for a user ID (dev only)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TestAuthRequest true "User ID"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/test [post]
func (h *AuthHandler) TestAuth(c *gin.Context) {
	var req TestAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	existing, err := h.profileUseCase.GetMyProfile(c.Request.Context(), req.UserID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		writeError(c, err, "test auth failed")
		return
	}

	token, expiresAt, err := h.tokenUseCase.Issue(req.UserID)
	if err != nil {
		writeError(c, err, "test auth failed")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Profile:   existing,
		IsNewUser: existing == nil,
	})
}

// Me returns current user info
// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  userID,
		"is_admin": c.GetBool("is_admin"),
	})
}

package handler

import (
	"net/http"

	"github.com/gdugdh24/lifestyle-connect/internal/matching"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/feed"
	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
	}
}

// FeedQuery is the feed page selection as query parameters
type FeedQuery struct {
	Scope        matching.Scope        `form:"scope" binding:"omitempty,scope"`
	TargetOrigin matching.TargetOrigin `form:"target_origin" binding:"omitempty,target_origin"`
	MinAge       *int                  `form:"min_age"`
	MaxAge       *int                  `form:"max_age"`
	Church       string                `form:"church" binding:"omitempty,max=200"`
	NeverMarried bool                  `form:"never_married"`
	NoChildren   bool                  `form:"no_children"`
}

// State converts the query into the selection the matcher understands.
// A single age bound leaves the other one at its limit.
func (q FeedQuery) State() matching.UIState {
	state := matching.UIState{
		Scope:          q.Scope,
		TargetOrigin:   q.TargetOrigin,
		ChurchQuery:    q.Church,
		MaritalOnly:    q.NeverMarried,
		NoChildrenOnly: q.NoChildren,
	}
	if q.MinAge != nil || q.MaxAge != nil {
		r := matching.AgeRange{Min: matching.MinAllowedAge, Max: matching.MaxAllowedAge}
		if q.MinAge != nil {
			r.Min = *q.MinAge
		}
		if q.MaxAge != nil {
			r.Max = *q.MaxAge
		}
		state.AgeRange = &r
	}
	return state
}

// GetFeed handles GET /feed
// @Summary Get match feed
// @Description Candidates visible under the selection, with entitlements and upgrade locks
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param scope query string false "home-city, home-country or global"
// @Param target_origin query string false "same-class or other-class"
// @Param min_age query int false "Minimum age"
// @Param max_age query int false "Maximum age"
// @Param church query string false "Church name contains"
// @Param never_married query bool false "Only never married"
// @Param no_children query bool false "Only without children"
// @Success 200 {object} feed.FeedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid query parameters",
		})
		return
	}

	resp, err := h.feedUseCase.GetFeed(c.Request.Context(), userID, q.State())
	if err != nil {
		writeError(c, err, "failed to load feed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResetSession handles POST /feed/reset
// @Summary Refresh candidate pool
// @Description Drop the session's cached pool so the next feed fetches a fresh one
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feed/reset [post]
func (h *FeedHandler) ResetSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.feedUseCase.ResetSession(c.Request.Context(), userID); err != nil {
		writeError(c, err, "failed to reset feed")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "feed reset"})
}

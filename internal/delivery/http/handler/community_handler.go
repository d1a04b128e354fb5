package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/gdugdh24/lifestyle-connect/internal/usecase/community"
	"github.com/gin-gonic/gin"
)

const streamKeepAlive = 25 * time.Second

type CommunityHandler struct {
	communityUseCase *community.CommunityUseCase
}

func NewCommunityHandler(communityUseCase *community.CommunityUseCase) *CommunityHandler {
	return &CommunityHandler{
		communityUseCase: communityUseCase,
	}
}

// CreatePost handles POST /community/posts
// @Summary Share a prayer request or testimonial
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body community.CreatePostRequest true "Post"
// @Success 201 {object} domain.Post
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /community/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req community.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	post, err := h.communityUseCase.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err, "failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts handles GET /community/posts
// @Summary List posts
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param kind query string false "prayer or testimonial" default(prayer)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.Post
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /community/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	kind := domain.PostKind(c.DefaultQuery("kind", string(domain.PostKindPrayer)))
	limit, offset := pagination(c)

	posts, err := h.communityUseCase.ListPosts(c.Request.Context(), kind, limit, offset)
	if err != nil {
		writeError(c, err, "failed to list posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Stream handles GET /community/stream
// @Summary Live community posts
// @Description Server-sent events; one "post" event per new post
// @Tags community
// @Security BearerAuth
// @Produce text/event-stream
// @Success 200 {object} domain.Post
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /community/stream [get]
func (h *CommunityHandler) Stream(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	ctx := c.Request.Context()
	posts, err := h.communityUseCase.Subscribe(ctx)
	if err != nil {
		writeError(c, err, "failed to subscribe")
		return
	}

	// The stream outlives the server's write timeout. When the writer cannot
	// lift the deadline the stream is cut at WriteTimeout; the request log says so.
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil {
		_ = c.Error(fmt.Errorf("stream keeps server write timeout: %w", err))
	}

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case post, ok := <-posts:
			if !ok {
				return false
			}
			c.SSEvent("post", post)
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", gin.H{"at": time.Now().Unix()})
			return true
		}
	})
}

package api

import (
	"net/http"

	"ArcadeFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CommentHandler 评论接口
type CommentHandler struct {
	comments *service.CommentService
	catalog  *service.CatalogService
	logger   *logrus.Logger
}

func NewCommentHandler(svc *service.Services, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{comments: svc.Comments, catalog: svc.Catalog, logger: logger}
}

type commentRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Username    string `json:"username"`
	CommentText string `json:"comment_text"`
	Timestamp   int64  `json:"timestamp"`
}

// GET /api/games/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	comments, err := h.comments.ListCommentsForGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "ListComments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// POST /api/games/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	comment, err := h.catalog.CommentOnGame(c.Request.Context(), id, req.UserID, req.Username, req.CommentText, req.Timestamp)
	if err != nil {
		respondError(c, h.logger, "CreateComment", err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// DELETE /api/admin/games/:id/comments
func (h *CommentHandler) DeleteComments(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.comments.DeleteCommentsForGame(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "DeleteComments", err)
		return
	}
	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"
	"strconv"

	"ArcadeFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RatingHandler 评分接口
type RatingHandler struct {
	ratings *service.RatingService
	catalog *service.CatalogService
	logger  *logrus.Logger
}

func NewRatingHandler(svc *service.Services, logger *logrus.Logger) *RatingHandler {
	return &RatingHandler{ratings: svc.Ratings, catalog: svc.Catalog, logger: logger}
}

type rateRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Timestamp int64  `json:"timestamp"`
}

// Averages 全部游戏的均分，key 为游戏 id
// GET /api/ratings/averages
func (h *RatingHandler) Averages(c *gin.Context) {
	avg, err := h.ratings.AverageRatingsForAllGames(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Averages", err)
		return
	}
	out := make(map[string]float64, len(avg))
	for id, v := range avg {
		out[strconv.FormatUint(id, 10)] = v
	}
	c.JSON(http.StatusOK, gin.H{"averages": out})
}

// GET /api/games/:id/ratings
func (h *RatingHandler) ListRatings(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ratings, err := h.ratings.ListRatingsForGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "ListRatings", err)
		return
	}
	summary, err := h.ratings.Summary(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "ListRatings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings, "summary": summary})
}

// GET /api/games/:id/ratings/:user_id
func (h *RatingHandler) GetUserRating(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	r, err := h.ratings.GetUserRating(c.Request.Context(), id, c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, "GetUserRating", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// RateGame 新建或覆盖当前用户的评分，返回最新均分
// POST /api/games/:id/ratings
func (h *RatingHandler) RateGame(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res, err := h.catalog.RateGame(c.Request.Context(), id, req.UserID, req.Rating, req.Timestamp)
	if err != nil {
		respondError(c, h.logger, "RateGame", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /api/admin/games/:id/ratings
func (h *RatingHandler) DeleteRatings(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.ratings.DeleteRatingsForGame(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "DeleteRatings", err)
		return
	}
	c.Status(http.StatusNoContent)
}

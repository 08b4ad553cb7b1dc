package api

import (
	"net/http"

	"ArcadeFlow/internal/model"
	"ArcadeFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GameHandler 游戏目录与详情页接口
type GameHandler struct {
	games   *service.GameService
	catalog *service.CatalogService
	logger  *logrus.Logger
}

func NewGameHandler(svc *service.Services, logger *logrus.Logger) *GameHandler {
	return &GameHandler{games: svc.Games, catalog: svc.Catalog, logger: logger}
}

// ListGames 首页列表，附带均分与分类统计
// GET /api/games?search=space&category=all
func (h *GameHandler) ListGames(c *gin.Context) {
	view, err := h.catalog.Catalog(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		respondError(c, h.logger, "ListGames", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetGame 详情页：游戏、评分概览、评论，传 user_id 时附带该用户的评分
// GET /api/games/:id?user_id=xxx
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := h.catalog.GameDetail(c.Request.Context(), id, c.Query("user_id"))
	if err != nil {
		respondError(c, h.logger, "GetGame", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/categories
func (h *GameHandler) ListCategories(c *gin.Context) {
	facets, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "ListCategories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": facets})
}

// CreateGame POST /api/admin/games
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req model.GameFields
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	g, err := h.games.CreateGame(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "CreateGame", err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// UpdateGame PUT /api/admin/games/:id，只更新请求中出现的字段
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req model.GameFields
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	g, err := h.games.UpdateGame(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, "UpdateGame", err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeleteGame DELETE /api/admin/games/:id，同时删除评论与评分
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteGame(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "DeleteGame", err)
		return
	}
	c.Status(http.StatusNoContent)
}

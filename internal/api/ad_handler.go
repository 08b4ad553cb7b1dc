package api

import (
	"net/http"

	"ArcadeFlow/internal/model"
	"ArcadeFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdHandler 广告配置与 ads.txt
type AdHandler struct {
	ads    *service.AdService
	logger *logrus.Logger
}

func NewAdHandler(svc *service.Services, logger *logrus.Logger) *AdHandler {
	return &AdHandler{ads: svc.Ads, logger: logger}
}

type adTextRequest struct {
	Text string `json:"text"`
}

// adConfigView 将 JSON 列展开为字符串数组
type adConfigView struct {
	*model.AdConfig
	AdUnitIDs []string `json:"ad_unit_ids"`
}

func newAdConfigView(cfg *model.AdConfig) adConfigView {
	return adConfigView{AdConfig: cfg, AdUnitIDs: cfg.GetAdUnitIDs()}
}

// GET /api/adsense
func (h *AdHandler) Get(c *gin.Context) {
	cfg, err := h.ads.GetAdConfig(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "GetAdConfig", err)
		return
	}
	c.JSON(http.StatusOK, newAdConfigView(cfg))
}

// AdsTxt GET /ads.txt，纯文本
func (h *AdHandler) AdsTxt(c *gin.Context) {
	txt, err := h.ads.AdsTxt(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "AdsTxt", err)
		return
	}
	if txt != "" {
		txt += "\n"
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(txt))
}

// PUT /api/admin/adsense
func (h *AdHandler) Put(c *gin.Context) {
	var req model.AdFields
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	cfg, err := h.ads.SetAdConfig(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "SetAdConfig", err)
		return
	}
	c.JSON(http.StatusOK, newAdConfigView(cfg))
}

// Parse 预览解析结果，不落库
// POST /api/admin/adsense/parse
func (h *AdHandler) Parse(c *gin.Context) {
	var req adTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	res := h.ads.ParseAdText(req.Text)
	if res.AdUnitIDs == nil {
		res.AdUnitIDs = []string{}
	}
	c.JSON(http.StatusOK, res)
}

// PUT /api/admin/adsense/text
func (h *AdHandler) ApplyText(c *gin.Context) {
	var req adTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	cfg, err := h.ads.ApplyAdText(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, h.logger, "ApplyAdText", err)
		return
	}
	c.JSON(http.StatusOK, newAdConfigView(cfg))
}

package api

import (
	"net/http"

	"ArcadeFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SettingHandler struct {
	settings *service.SettingService
	logger   *logrus.Logger
}

func NewSettingHandler(svc *service.Services, logger *logrus.Logger) *SettingHandler {
	return &SettingHandler{settings: svc.Settings, logger: logger}
}

type websiteNameRequest struct {
	WebsiteName string `json:"website_name"`
}

// GET /api/settings/website-name
func (h *SettingHandler) GetWebsiteName(c *gin.Context) {
	name, err := h.settings.WebsiteName(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "GetWebsiteName", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"website_name": name})
}

// PUT /api/admin/settings/website-name
func (h *SettingHandler) SetWebsiteName(c *gin.Context) {
	var req websiteNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	name, err := h.settings.SetWebsiteName(c.Request.Context(), req.WebsiteName)
	if err != nil {
		respondError(c, h.logger, "SetWebsiteName", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"website_name": name})
}

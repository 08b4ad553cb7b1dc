package api

import (
	"net/http"

	"ArcadeFlow/internal/model"
	"ArcadeFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ContentHandler 静态页面内容接口
type ContentHandler struct {
	contents *service.ContentService
	logger   *logrus.Logger
}

func NewContentHandler(svc *service.Services, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{contents: svc.Contents, logger: logger}
}

// contentView 前台展示用，附带分段后的正文
type contentView struct {
	*model.Content
	Paragraphs []string `json:"paragraphs"`
}

func newContentView(c *model.Content) contentView {
	p := c.Paragraphs()
	if p == nil {
		p = []string{}
	}
	return contentView{Content: c, Paragraphs: p}
}

// GetByType GET /api/content/:type，type 取 about/contact/privacy/disclaimer
func (h *ContentHandler) GetByType(c *gin.Context) {
	content, err := h.contents.GetByType(c.Request.Context(), model.ContentType(c.Param("type")))
	if err != nil {
		respondError(c, h.logger, "GetContentByType", err)
		return
	}
	c.JSON(http.StatusOK, newContentView(content))
}

// GET /api/admin/content
func (h *ContentHandler) List(c *gin.Context) {
	list, err := h.contents.ListContents(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "ListContents", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contents": list})
}

// GET /api/admin/content/:id
func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	content, err := h.contents.GetContent(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "GetContent", err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// POST /api/admin/content
func (h *ContentHandler) Create(c *gin.Context) {
	var req model.ContentFields
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	content, err := h.contents.CreateContent(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "CreateContent", err)
		return
	}
	c.JSON(http.StatusCreated, content)
}

// PUT /api/admin/content/:id
func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req model.ContentFields
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	content, err := h.contents.UpdateContent(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, "UpdateContent", err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// DELETE /api/admin/content/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.contents.DeleteContent(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "DeleteContent", err)
		return
	}
	c.Status(http.StatusNoContent)
}

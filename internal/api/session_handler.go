package api

import (
	"net/http"

	"ArcadeFlow/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionHandler 匿名会话：前端首次访问时领取 user_id
type SessionHandler struct {
	sessions *session.Service
	logger   *logrus.Logger
}

func NewSessionHandler(sessions *session.Service, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

// POST /api/session
func (h *SessionHandler) Issue(c *gin.Context) {
	s, err := h.sessions.Issue(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "IssueSession", err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GET /api/session/:user_id
func (h *SessionHandler) Get(c *gin.Context) {
	s, err := h.sessions.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

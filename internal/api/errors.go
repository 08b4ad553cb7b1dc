package api

import (
	"errors"
	"net/http"
	"strconv"

	"ArcadeFlow/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// statusOf 领域错误到 HTTP 状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError 5xx 记 Error，4xx 只记 Debug
func respondError(c *gin.Context, logger *logrus.Logger, op string, err error) {
	status := statusOf(err)
	entry := logger.WithError(err).WithFields(logrus.Fields{"op": op, "status": status})
	if status >= http.StatusInternalServerError {
		entry.Error(op + " failed")
	} else {
		entry.Debug(op + " rejected")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// paramID 解析路径中的数字 id
func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

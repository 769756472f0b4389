package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Aadi2k05/blogging-web/internal/services"
)

// writeError 将服务层错误统一翻译为 HTTP 响应。
// notFoundMsg 为 404 时返回给客户端的资源级提示文案。
func (h *Handler) writeError(c *gin.Context, err error, notFoundMsg string) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Msg})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return
	}
	if errors.Is(err, services.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already subscribed!"})
		return
	}
	var ue *services.UnparsableError
	if errors.As(err, &ue) {
		log.WithError(ue.Cause).WithField("raw_text", ue.Raw).Error("ai response not parsable as json")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "AI generated content could not be parsed as structured JSON. Please try again with a different prompt.",
			"rawText": ue.Raw,
			"error":   ue.Cause.Error(),
		})
		return
	}
	var ge *services.GenerationError
	if errors.As(err, &ge) {
		log.WithError(ge.Cause).Error("ai generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to generate AI content.",
			"error":   ge.Cause.Error(),
		})
		return
	}
	log.WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

// bindJSON 绑定请求体；失败时直接响应 400 并返回 false。
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return false
	}
	return true
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aadi2k05/blogging-web/internal/metrics"
	"github.com/Aadi2k05/blogging-web/internal/services"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// aiGenerate 将主题提示词转发给生成 API，透传解析出的建议 JSON。
func (h *Handler) aiGenerate(c *gin.Context) {
	var req generateRequest
	if !bindJSON(c, &req) {
		return
	}
	payload, err := h.suggestSvc.Suggest(c.Request.Context(), req.Prompt)
	if err != nil {
		switch err.(type) {
		case *services.UnparsableError:
			metrics.AIGenerations.WithLabelValues("unparsable").Inc()
		case *services.GenerationError:
			metrics.AIGenerations.WithLabelValues("generation_error").Inc()
		}
		h.writeError(c, err, "not found")
		return
	}
	metrics.AIGenerations.WithLabelValues("ok").Inc()
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

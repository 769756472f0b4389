package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// subscribe 登记新的通讯订阅。
func (h *Handler) subscribe(c *gin.Context) {
	var req subscribeRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.subSvc.Subscribe(c.Request.Context(), req.Email); err != nil {
		h.writeError(c, err, "Subscriber not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Successfully subscribed to newsletter!"})
}

// listSubscribers 返回全部订阅者（管理操作）。
func (h *Handler) listSubscribers(c *gin.Context) {
	subs, err := h.subSvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Subscriber not found")
		return
	}
	c.JSON(http.StatusOK, subs)
}

// unsubscribe 按 id 删除订阅者（管理操作）。
func (h *Handler) unsubscribe(c *gin.Context) {
	if err := h.subSvc.Unsubscribe(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Subscriber not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscriber removed successfully"})
}

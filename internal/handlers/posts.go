package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aadi2k05/blogging-web/internal/services"
)

type createPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

type commentRequest struct {
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// listPosts 返回全部文章（最新在前）。
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.postSvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// createPost 创建新文章并返回带 id 与时间戳的完整文档。
func (h *Handler) createPost(c *gin.Context) {
	var req createPostRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.postSvc.Create(c.Request.Context(), services.CreatePostInput{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		Email:    req.Email,
	})
	if err != nil {
		h.writeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// deletePost 删除文章及其全部评论（管理操作）。
func (h *Handler) deletePost(c *gin.Context) {
	if err := h.postSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// addComment 为指定文章追加评论。
func (h *Handler) addComment(c *gin.Context) {
	var req commentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.postSvc.AddComment(c.Request.Context(), c.Param("id"), req.Author, req.Content)
	if err != nil {
		h.writeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// deleteComment 从指定文章移除评论（管理操作）。
// 评论 id 未命中时依旧返回成功，只有文章不存在才 404。
func (h *Handler) deleteComment(c *gin.Context) {
	if err := h.postSvc.RemoveComment(c.Request.Context(), c.Param("id"), c.Param("commentId")); err != nil {
		h.writeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

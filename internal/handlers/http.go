package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Aadi2k05/blogging-web/internal/config"
	"github.com/Aadi2k05/blogging-web/internal/metrics"
	"github.com/Aadi2k05/blogging-web/internal/services"
)

// Handler 聚合所有依赖（配置、服务、存储句柄）并注册全部 HTTP 路由。
type Handler struct {
	cfg        config.Config
	postSvc    *services.PostService
	subSvc     *services.SubscriberService
	suggestSvc *services.SuggestionService
	db         *mongo.Database
}

// New 构造 Handler，将各领域服务注入，用于后续路由注册与处理。
// db 仅用于健康检查，可为 nil（测试场景）。
func New(cfg config.Config, posts *services.PostService, subs *services.SubscriberService, suggest *services.SuggestionService, db *mongo.Database) *Handler {
	return &Handler{cfg: cfg, postSvc: posts, subSvc: subs, suggestSvc: suggest, db: db}
}

// RegisterRoutes 在 Gin 路由上挂载全部端点（/api 下的业务接口与运维端点）。
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// 文章与评论
		api.GET("/posts", h.listPosts)
		api.POST("/posts", h.createPost)
		// gin 要求同一位置的路径参数同名，故文章 id 统一用 :id
		api.DELETE("/posts/:id", h.deletePost)
		api.POST("/posts/:id/comments", h.addComment)
		api.DELETE("/posts/:id/comments/:commentId", h.deleteComment)

		// 通讯订阅
		api.POST("/subscribe", h.subscribe)
		api.GET("/subscribers", h.listSubscribers)
		api.DELETE("/subscribers/:id", h.unsubscribe)

		// AI 建议
		api.POST("/ai-generate", h.aiGenerate)
	}

	// 运维端点
	r.GET("/metrics", metrics.Exposer())
	r.GET("/healthz", h.healthz)

	// 前端静态资源：挂载在 API 路由之前的语义由 NoRoute 实现 ——
	// 命中 /api 的请求不会落到这里，其余路径优先尝试静态文件。
	staticDir := ""
	if h.cfg.Static.Dir != "" {
		staticDir = config.FirstExisting(h.cfg.Static.Dir, "../"+h.cfg.Static.Dir)
	}
	r.GET("/", func(c *gin.Context) {
		if staticDir != "" {
			if idx := filepath.Join(staticDir, "index.html"); fileExists(idx) {
				c.File(idx)
				return
			}
		}
		c.String(http.StatusOK, "AI Blog Hub backend is running!")
	})
	if staticDir != "" {
		r.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
				c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
				return
			}
			// 防止目录穿越：拼接后必须仍位于静态目录内
			fp := filepath.Join(staticDir, filepath.Clean("/"+path))
			if fileExists(fp) {
				c.File(fp)
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		})
	}
}

// healthz 报告进程与存储健康状况。
func (h *Handler) healthz(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Client().Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

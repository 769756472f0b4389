package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Aadi2k05/blogging-web/internal/config"
	"github.com/Aadi2k05/blogging-web/internal/genai"
	"github.com/Aadi2k05/blogging-web/internal/handlers"
	"github.com/Aadi2k05/blogging-web/internal/metrics"
	"github.com/Aadi2k05/blogging-web/internal/middlewares"
	"github.com/Aadi2k05/blogging-web/internal/services"
	"github.com/Aadi2k05/blogging-web/internal/storage"
)

// main 为服务入口：加载配置、初始化日志/存储/服务、注册路由并启动 HTTP 服务。
func main() {
	// 配置结构化日志格式
	log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	// 加载配置（配置文件 + 环境变量覆盖，配合内置默认值）
	cfg := config.Load()
	if cfg.Gemini.APIKey == "" {
		// 按约定不在启动时强校验外部依赖，仅提示；调用时由下游失败暴露
		log.Warn("gemini api key not set; /api/ai-generate will fail until GEMINI_API_KEY is provided")
	}
	log.WithFields(log.Fields{
		"env":          cfg.Env,
		"http_addr":    cfg.HTTPAddr,
		"mongo_uri":    cfg.Mongo.URIMasked(),
		"mongo_db":     cfg.Mongo.DBName,
		"gemini_model": cfg.Gemini.Model,
		"static_dir":   cfg.Static.Dir,
	}).Info("configuration loaded")

	// 初始化存储（MongoDB）
	db, err := storage.InitMongo(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect mongo")
	}
	defer storage.CloseMongo(db)

	// 初始化核心服务
	postSvc := services.NewPostService(storage.NewPostStore(db))
	subSvc := services.NewSubscriberService(storage.NewSubscriberStore(db))
	suggestSvc := services.NewSuggestionService(genai.NewClient(cfg.Gemini))

	// HTTP 路由与中间件
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.CORS(cfg))
	router.Use(middlewares.SecurityHeaders(cfg))
	router.Use(metrics.Handler())

	// 装载 HTTP 处理器
	h := handlers.New(cfg, postSvc, subSvc, suggestSvc, db)
	h.RegisterRoutes(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("starting http server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen")
		}
	}()

	// 优雅退出
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	} else {
		log.Info("server stopped")
	}
}
